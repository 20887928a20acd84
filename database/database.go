package database

import (
	"gorm.io/gorm"
)

// Database aggregates one repository per resource over a shared GORM
// instance. A nil gorm.DB produces an unconfigured Database; the API layer
// turns that into 503 DATABASE_NOT_CONFIGURED instead of failing at startup.
type Database struct {
	db *gorm.DB

	projectRepo              *ProjectRepo
	teamMemberRepo           *TeamMemberRepo
	eventRepo                *EventRepo
	feedbackRepo             *FeedbackRepo
	packageRepo              *PackageRepo
	serviceRepo              *ServiceRepo
	networkCollaborationRepo *NetworkCollaborationRepo
	networkPartnerRepo       *NetworkPartnerRepo
	projectSubmissionRepo    *ProjectSubmissionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                       db,
		projectRepo:              NewProjectRepo(db),
		teamMemberRepo:           NewTeamMemberRepo(db),
		eventRepo:                NewEventRepo(db),
		feedbackRepo:             NewFeedbackRepo(db),
		packageRepo:              NewPackageRepo(db),
		serviceRepo:              NewServiceRepo(db),
		networkCollaborationRepo: NewNetworkCollaborationRepo(db),
		networkPartnerRepo:       NewNetworkPartnerRepo(db),
		projectSubmissionRepo:    NewProjectSubmissionRepo(db),
	}
}

// Configured reports whether a database connection was established.
func (d Database) Configured() bool {
	return d.db != nil
}

// DB exposes the underlying GORM instance for migrations and code generation.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TeamMemberRepo() *TeamMemberRepo {
	return d.teamMemberRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) FeedbackRepo() *FeedbackRepo {
	return d.feedbackRepo
}

func (d Database) PackageRepo() *PackageRepo {
	return d.packageRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) NetworkCollaborationRepo() *NetworkCollaborationRepo {
	return d.networkCollaborationRepo
}

func (d Database) NetworkPartnerRepo() *NetworkPartnerRepo {
	return d.networkPartnerRepo
}

func (d Database) ProjectSubmissionRepo() *ProjectSubmissionRepo {
	return d.projectSubmissionRepo
}
