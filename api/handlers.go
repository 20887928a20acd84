package api

import (
	"time"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(
	database database.Database,
	c map[string]string,
	store services.ObjectStore,
	mailer services.Mailer,
	completer services.Completer,
	startupTime time.Time,
) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		teamHandler:     newTeamHandler(database.TeamMemberRepo()),
		eventHandler:    newEventHandler(database.EventRepo()),
		feedbackHandler: newFeedbackHandler(database.FeedbackRepo()),
		serviceHandler:  newServiceHandler(database.ServiceRepo()),
		packageHandler:  newPackageHandler(database.PackageRepo()),
		networkHandler:  newNetworkHandler(database.NetworkCollaborationRepo(), database.NetworkPartnerRepo()),
		uploadHandler:   newUploadHandler(store),
		emailHandler:    newEmailHandler(mailer, database.ProjectSubmissionRepo(), database, c),
		chatHandler:     newChatHandler(completer),
		healthHandler:   newHealthHandler(database, startupTime),
	}
}
