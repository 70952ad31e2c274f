package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lemmequit/internal/models/request_models"
	"lemmequit/internal/models/response_models"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

type RelationshipController struct {
	relationshipService services.RelationshipServiceInterface
}

func NewRelationshipController(relationshipService services.RelationshipServiceInterface) *RelationshipController {
	return &RelationshipController{
		relationshipService: relationshipService,
	}
}

// ListPatients godoc
// @Summary List the therapist's active patients
// @Tags Patients
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients [get]
func (r *RelationshipController) ListPatients(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	patients, err := r.relationshipService.ListPatients(c.Request.Context(), therapistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.UserResponse, 0, len(patients))
	for i := range patients {
		out = append(out, toUserResponse(&patients[i]))
	}
	utils.RespondSuccess(c, out, "Patients fetched successfully")
}

// AddPatientByEmail godoc
// @Summary Add a patient to the therapist's list by email
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body request_models.AddPatientByEmailRequest true "Patient email"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients [post]
func (r *RelationshipController) AddPatientByEmail(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.AddPatientByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	patient, err := r.relationshipService.AddPatientByEmail(c.Request.Context(), therapistID, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toUserResponse(patient), "Patient added successfully")
}

// Invite godoc
// @Summary Send a link invitation to a patient
// @Description Puts the relationship in pending state until the patient accepts
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body request_models.ProposeLinkRequest true "Patient id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients/invite [post]
func (r *RelationshipController) Invite(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.ProposeLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	patientID := uuid.MustParse(req.PatientID)
	if err := r.relationshipService.ProposeLink(c.Request.Context(), therapistID, patientID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitation sent")
}

// Assign godoc
// @Summary Link a patient directly, with no pending stage
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body request_models.AssignPatientRequest true "Patient id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients/assign [post]
func (r *RelationshipController) Assign(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.AssignPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	patientID := uuid.MustParse(req.PatientID)
	if err := r.relationshipService.AssignDirect(c.Request.Context(), therapistID, patientID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Patient assigned")
}

// AcceptInvitation godoc
// @Summary Accept the pending therapist invitation
// @Tags Links
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /links/accept [post]
func (r *RelationshipController) AcceptInvitation(c *gin.Context) {
	patientID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	if err := r.relationshipService.AcceptLink(c.Request.Context(), patientID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invitation accepted")
}

// RemovePatient godoc
// @Summary Unlink a patient from the therapist
// @Tags Patients
// @Produce json
// @Param id path string true "Patient id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients/{id} [delete]
func (r *RelationshipController) RemovePatient(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid patient id")
		return
	}

	if err := r.relationshipService.Unlink(c.Request.Context(), therapistID, patientID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Patient removed")
}

// GetActivePatient godoc
// @Summary Get the therapist's active patient
// @Tags Patients
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients/active [get]
func (r *RelationshipController) GetActivePatient(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	patient, err := r.relationshipService.GetActivePatient(c.Request.Context(), therapistID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if patient == nil {
		utils.RespondSuccess(c, nil, "No active patient")
		return
	}

	utils.RespondSuccess(c, toUserResponse(patient), "Active patient fetched successfully")
}

// SetActivePatient godoc
// @Summary Set or clear the therapist's active patient
// @Description Empty patient_id clears the selection
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body request_models.SetActivePatientRequest true "Patient id or empty"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /patients/active [put]
func (r *RelationshipController) SetActivePatient(c *gin.Context) {
	therapistID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var req request_models.SetActivePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var patientID *uuid.UUID
	if req.PatientID != "" {
		id := uuid.MustParse(req.PatientID)
		patientID = &id
	}

	if err := r.relationshipService.SetActivePatient(c.Request.Context(), therapistID, patientID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Active patient updated")
}
