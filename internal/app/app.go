package app

import (
	"dispatch/internal/handlers/rest/connection_token_post"
	"dispatch/internal/handlers/rest/mission_assign_post"
	"dispatch/internal/handlers/rest/mission_assigned_get"
	"dispatch/internal/handlers/rest/mission_cancel_post"
	"dispatch/internal/handlers/rest/mission_create_post"
	"dispatch/internal/handlers/rest/mission_location_post"
	"dispatch/internal/handlers/rest/mission_owned_get"
	"dispatch/internal/handlers/rest/mission_progress_post"
	"dispatch/internal/handlers/rest/missions_assigned_get"
	"dispatch/internal/handlers/rest/missions_owned_get"
	"dispatch/internal/handlers/rest/subscription_token_post"
	"dispatch/internal/pkg/auth"
	missionService "dispatch/internal/service/mission"
	"dispatch/pkg/background"
)

type Application struct {
	ServiceMission    ServiceMission
	ChannelTokens     ChannelTokens
	Verifier          *auth.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceMission interface {
	mission_create_post.Service
	missions_owned_get.Service
	mission_owned_get.Service
	mission_assign_post.Service
	mission_cancel_post.Service
	missions_assigned_get.Service
	mission_assigned_get.Service
	mission_progress_post.Service
	mission_location_post.Service
}

type ChannelTokens interface {
	connection_token_post.Issuer
	subscription_token_post.Issuer
}

type KafkaWorkerApp struct {
	MissionService *missionService.Service
}
