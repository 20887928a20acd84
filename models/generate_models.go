package models

import (
	"fmt"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// GenerateModels produces typed query helpers for every table this service
// owns. Run with GENERATE_MODELS=true; output lands in database/query and is
// checked in alongside the hand-written repos.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./database/query",
		Mode:          gen.WithoutContext | gen.WithDefaultQuery,
		FieldNullable: true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		Project{},
		TeamMember{},
		Event{},
		Feedback{},
		Package{},
		Service{},
		NetworkCollaboration{},
		NetworkPartner{},
		ProjectSubmission{},
	)

	g.Execute()
}
