// Command seed loads placeholder portfolio content through the service layer
// so a fresh deployment has something to render. It goes through the same
// validation and id allocation as the API; running it twice creates duplicate
// projects and skills, so it is meant for empty databases.
package main

import (
	"context"
	"log"
	"time"

	"github.com/devfolio/api/internal/config"
	"github.com/devfolio/api/internal/database"

	profilerepo "github.com/devfolio/api/internal/profile/repository"
	profilesvc "github.com/devfolio/api/internal/profile/service"
	projectrepo "github.com/devfolio/api/internal/project/repository"
	projectsvc "github.com/devfolio/api/internal/project/service"
	skillrepo "github.com/devfolio/api/internal/skill/repository"
	skillsvc "github.com/devfolio/api/internal/skill/service"
)

func strp(s string) *string { return &s }

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGODB_URI is required: seeding an in-memory store is pointless")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	counters := db.Collection("counters")

	profiles := profilesvc.NewService(profilerepo.NewMongoRepo(db.Collection("profile")))
	projects := projectsvc.NewService(projectrepo.NewMongoRepo(db.Collection("projects"), counters))
	skills := skillsvc.NewService(skillrepo.NewMongoRepo(db.Collection("skills"), counters))

	if _, err := profiles.Update(ctx, profilesvc.UpdateInput{
		Name:             strp("Jamie Doe"),
		Title:            strp("Full-Stack Developer"),
		HeroBio:          strp("I build web applications end to end."),
		AboutBio:         strp("Placeholder bio. Edit this through the admin panel."),
		Email:            strp("jamie@example.com"),
		GitHub:           strp("https://github.com/example"),
		LinkedIn:         strp("https://linkedin.com/in/example"),
		ExperienceYears:  strp("5"),
		EducationSummary: strp("B.Sc. Computer Science"),
	}); err != nil {
		log.Fatalf("seed profile: %v", err)
	}
	log.Println("seeded profile")

	seedSkills := []skillsvc.CreateInput{
		{Name: "Go", Level: "Expert", Percentage: intp(95), Category: "backend"},
		{Name: "MongoDB", Level: "Advanced", Percentage: intp(85), Category: "backend"},
		{Name: "Redis", Level: "Advanced", Percentage: intp(80), Category: "backend"},
		{Name: "React", Level: "Advanced", Percentage: intp(85), Category: "frontend"},
		{Name: "TypeScript", Level: "Advanced", Percentage: intp(80), Category: "frontend"},
		{Name: "CSS", Level: "Intermediate", Percentage: intp(70), Category: "frontend"},
	}
	for _, in := range seedSkills {
		if _, err := skills.Create(ctx, in); err != nil {
			log.Fatalf("seed skill %s: %v", in.Name, err)
		}
	}
	log.Printf("seeded %d skills", len(seedSkills))

	seedProjects := []projectsvc.CreateInput{
		{
			Title:            "Portfolio API",
			ShortDescription: "The backend serving this site.",
			FullDescription:  "REST API with JWT auth, MongoDB storage and MinIO uploads.",
			TechStack:        []string{"Go", "Gin", "MongoDB", "MinIO"},
			RepoURL:          "https://github.com/example/portfolio-api",
			Published:        true,
		},
		{
			Title:            "Sample Draft Project",
			ShortDescription: "Unpublished placeholder, invisible to the public site.",
			TechStack:        []string{"Go"},
			Published:        false,
		},
	}
	for _, in := range seedProjects {
		if _, err := projects.Create(ctx, in); err != nil {
			log.Fatalf("seed project %s: %v", in.Title, err)
		}
	}
	log.Printf("seeded %d projects", len(seedProjects))
}

func intp(i int) *int { return &i }
