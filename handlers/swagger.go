package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>devfolio-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the public and owner endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "devfolio-api", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Exchange owner credentials for a bearer token",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token and identity" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/me": {
      "get": { "summary": "Identity encoded in the presented token", "responses": { "200": { "description": "identity" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/projects": {
      "get": { "summary": "List published projects, newest first", "responses": { "200": { "description": "project list" } } },
      "post": { "summary": "Create a project (owner, multipart)", "responses": { "201": { "description": "created project" }, "400": { "description": "validation failure" } } }
    },
    "/api/projects/{id}": {
      "get": { "summary": "Fetch one published project", "responses": { "200": { "description": "project" }, "404": { "description": "absent or draft" } } },
      "put": { "summary": "Merge-update a project (owner, multipart)", "responses": { "200": { "description": "updated project" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a project (owner)", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/projects/{id}/visibility": {
      "patch": { "summary": "Set the publish flag (owner)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"published":{"type":"boolean"}}}}}}, "responses": { "200": { "description": "updated project" } } }
    },
    "/api/admin/projects": {
      "get": { "summary": "List every project including drafts (owner)", "responses": { "200": { "description": "project list" } } }
    },
    "/api/profile": {
      "get": { "summary": "Owner profile, empty defaults when unset", "responses": { "200": { "description": "profile" } } },
      "put": { "summary": "Merge-update the profile (owner, multipart)", "responses": { "200": { "description": "profile" } } }
    },
    "/api/skills": {
      "get": { "summary": "List skills grouped by category", "responses": { "200": { "description": "skill list" } } },
      "post": { "summary": "Add a skill (owner)", "responses": { "201": { "description": "created skill" }, "400": { "description": "validation failure" } } }
    },
    "/api/skills/{id}": {
      "delete": { "summary": "Delete a skill (owner)", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } }
  }
}`
