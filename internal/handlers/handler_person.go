package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/expensetrackr/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// personHandler handles HTTP requests related to people.
type personHandler struct {
	personService    portssvc.PersonSvcFacade
	reportingService portssvc.ReportingService
}

// newPersonHandler creates a new personHandler.
func newPersonHandler(ps portssvc.PersonSvcFacade, rs portssvc.ReportingService) *personHandler {
	return &personHandler{
		personService:    ps,
		reportingService: rs,
	}
}

// registerPersonRoutes registers all person-related routes.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade, reportingService portssvc.ReportingService) {
	h := newPersonHandler(personService, reportingService)

	people := rg.Group("/people")
	{
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.GET("/totals", h.peopleTotals)
		people.GET("/:personID", h.getPerson)
		people.PUT("/:personID", h.updatePerson)
		people.DELETE("/:personID", h.deletePerson)
	}
}

// createPerson godoc
// @Summary Create a new person
// @Description Registers a new person with a name and birth date
// @Tags people
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.Result[dto.PersonResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input"
// @Failure 500 {object} dto.Result[any] "Failed to create person"
// @Router /people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create person request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create person in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Person created successfully", slog.String("person_id", person.PersonID))
	respondSuccess(c, http.StatusCreated, dto.ToPersonResponse(person))
}

// getPerson godoc
// @Summary Get a person by ID
// @Description Retrieves details for a specific person, including derived age
// @Tags people
// @Produce  json
// @Param   personID path string true "Person ID"
// @Success 200 {object} dto.Result[dto.PersonResponse]
// @Failure 404 {object} dto.Result[any] "Person not found"
// @Failure 500 {object} dto.Result[any] "Failed to retrieve person"
// @Router /people/{personID} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	person, err := h.personService.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		logger.Warn("Failed to get person", slog.String("person_id", personID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToPersonResponse(person))
}

// listPeople godoc
// @Summary List people
// @Description Retrieves all registered people ordered by name
// @Tags people
// @Produce  json
// @Success 200 {object} dto.Result[dto.ListPersonsResponse]
// @Failure 500 {object} dto.Result[any] "Failed to list people"
// @Router /people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	persons, err := h.personService.ListPersons(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list people", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListPersonsResponse(persons))
}

// updatePerson godoc
// @Summary Update a person
// @Description Updates a person's name and/or birth date
// @Tags people
// @Accept  json
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   person body dto.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} dto.Result[dto.PersonResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input"
// @Failure 404 {object} dto.Result[any] "Person not found"
// @Failure 500 {object} dto.Result[any] "Failed to update person"
// @Router /people/{personID} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update person request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), personID, req)
	if err != nil {
		logger.Error("Failed to update person in service", slog.String("person_id", personID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Person updated successfully", slog.String("person_id", personID))
	respondSuccess(c, http.StatusOK, dto.ToPersonResponse(person))
}

// deletePerson godoc
// @Summary Delete a person
// @Description Removes a person along with all of their transactions
// @Tags people
// @Produce  json
// @Param   personID path string true "Person ID"
// @Success 204 "Person deleted"
// @Failure 404 {object} dto.Result[any] "Person not found"
// @Failure 500 {object} dto.Result[any] "Failed to delete person"
// @Router /people/{personID} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	if err := h.personService.DeletePerson(c.Request.Context(), personID); err != nil {
		logger.Error("Failed to delete person", slog.String("person_id", personID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Person deleted successfully", slog.String("person_id", personID))
	c.Status(http.StatusNoContent)
}

// peopleTotals godoc
// @Summary People totals report
// @Description Aggregates revenue, expense and balance per person, with overall totals
// @Tags people
// @Produce  json
// @Success 200 {object} dto.Result[dto.PeopleReportResponse]
// @Failure 500 {object} dto.Result[any] "Failed to build report"
// @Router /people/totals [get]
func (h *personHandler) peopleTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.PeopleReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build people report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToPeopleReportResponse(report))
}
