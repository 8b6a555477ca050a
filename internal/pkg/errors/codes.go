package errors

import "net/http"

var (
	ErrInvalidDimension = New(
		"INVALID_DIMENSION",
		"Building and obstacle dimensions must be positive",
		http.StatusBadRequest,
	)

	ErrInfeasibleLinkBudget = New(
		"INFEASIBLE_LINK_BUDGET",
		"Link budget leaves no coverage radius",
		http.StatusUnprocessableEntity,
	)

	ErrUnresolvedReference = New(
		"UNRESOLVED_REFERENCE",
		"Obstacle references an unknown material or floor",
		http.StatusUnprocessableEntity,
	)

	ErrUnknownTechnology = New(
		"UNKNOWN_TECHNOLOGY",
		"Unknown technology or frequency band",
		http.StatusBadRequest,
	)

	ErrInvalidView = New(
		"INVALID_VIEW",
		"Invalid heatmap view",
		http.StatusBadRequest,
	)

	ErrScenarioNotFound = New(
		"SCENARIO_NOT_FOUND",
		"Scenario not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
