package web

import (
	api "cfp-bracket/api/api"
	"cfp-bracket/api/store"
)

// Config carries what the HTTP server needs to run
type Config struct {
	Addr       string
	API        *api.API
	SyncSecret string
}

// Server holds handler dependencies
type Server struct {
	api        *api.API
	syncSecret string
}

// submitRequest is the body of POST /predictions. Picks maps matchup ids
// (fr1..fr4, qf1..qf4, sf1, sf2, final) to the predicted winner's name. The
// owner fields are filled in by the fronting auth proxy, which is trusted
type submitRequest struct {
	OwnerId        string               `json:"ownerId"`
	OwnerLabel     string               `json:"ownerLabel"`
	Name           string               `json:"name"`
	Picks          map[string]string    `json:"picks"`
	PredictedScore store.PredictedScore `json:"predictedScore"`
}

type errorResponse struct {
	Error string `json:"error"`
}
