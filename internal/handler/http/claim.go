package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/peoplehr/hrms-backend-go/internal/domain/claim"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/response"
)

type ClaimHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type claimHandlerImpl struct {
	claimService claim.ClaimService
}

func NewClaimHandler(claimService claim.ClaimService) ClaimHandler {
	return &claimHandlerImpl{
		claimService: claimService,
	}
}

// Create implements ClaimHandler.
func (h *claimHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req claim.CreateClaimRequest

	// Receipts arrive as multipart; plain JSON is accepted when there is no
	// file to attach.
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		amount, err := decimal.NewFromString(r.FormValue("amount"))
		if err != nil {
			response.BadRequest(w, "amount must be a decimal number", nil)
			return
		}
		req.ClaimType = r.FormValue("claim_type")
		req.Amount = amount
		req.ClaimDate = r.FormValue("claim_date")
		req.Description = r.FormValue("description")

		file, fileHeader, err := r.FormFile("receipt")
		if err == nil {
			defer file.Close()
			req.Receipt = file
			req.ReceiptFilename = fileHeader.Filename
			req.ReceiptContentType = fileHeader.Header.Get("Content-Type")
		} else if err != http.ErrMissingFile {
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	cl, err := h.claimService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense claim submitted", cl)
}

// Get implements ClaimHandler.
func (h *claimHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cl, err := h.claimService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cl)
}

// Review implements ClaimHandler.
func (h *claimHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req claim.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cl, err := h.claimService.Review(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense claim reviewed", cl)
}

// List implements ClaimHandler.
func (h *claimHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := claim.ClaimFilter{
		EmployeeID: optionalQueryParam(r, "employee_id"),
		Status:     optionalQueryParam(r, "status"),
	}

	claims, err := h.claimService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, claims)
}
