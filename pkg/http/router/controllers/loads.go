package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/meshload/pkg/config"
	helper "github.com/lintang-b-s/meshload/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const maxDescriptionBytes = 64 << 20

type loadsAPI struct {
	loadService LoadService
	log         *zap.Logger
}

func New(loadService LoadService, log *zap.Logger) *loadsAPI {
	return &loadsAPI{
		loadService: loadService,
		log:         log,
	}
}

func (api *loadsAPI) Routes(group *helper.RouteGroup) {
	group.POST("/loads", api.computeLoads)
	group.GET("/topology", api.topology)
}

// computeLoads godoc
//
//	@Summary		compute the load of every directed edge of a mesh
//	@Accept			json
//	@Produce		json
//	@Router			/loads [post]
func (api *loadsAPI) computeLoads(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDescriptionBytes)
	cfg, err := config.Decode(r.Body)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	report, err := api.loadService.ComputeLoads(r.Context(), cfg)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewLoadsResponse(report)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// topology godoc
//
//	@Summary		node and directed edge counts of an undamaged mesh
//	@Produce		json
//	@Param			width	query	int	true	"grid width"
//	@Param			height	query	int	true	"grid height"
//	@Router			/topology [get]
func (api *loadsAPI) topology(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request topologyRequest
		err     error
	)

	query := r.URL.Query()
	request.Width, err = strconv.Atoi(query.Get("width"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("width is required and must be a valid integer"))
		return
	}
	request.Height, err = strconv.Atoi(query.Get("height"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("height is required and must be a valid integer"))
		return
	}

	if err := config.ValidateStruct(request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", config.ValidationMessages(err)))
		return
	}

	nodes, edges, err := api.loadService.TopologyStats(request.Width, request.Height)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": topologyResponse{Nodes: nodes, Edges: edges}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
