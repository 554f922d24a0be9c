package claim

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/peoplehr/hrms-backend-go/internal/domain/claim"
	"github.com/peoplehr/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/storage"
)

type ClaimServiceImpl struct {
	claim.ClaimRepository
	employee.EmployeeRepository
	fileStorage storage.FileStorage
}

func NewClaimService(claimRepository claim.ClaimRepository, employeeRepository employee.EmployeeRepository, fileStorage storage.FileStorage) claim.ClaimService {
	return &ClaimServiceImpl{
		ClaimRepository:    claimRepository,
		EmployeeRepository: employeeRepository,
		fileStorage:        fileStorage,
	}
}

func callerFromClaims(ctx context.Context) (employeeID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, _ = claims["employee_id"].(string)
	role, _ := claims["role"].(string)
	return employeeID, role == "admin", nil
}

func (c *ClaimServiceImpl) toResponse(ctx context.Context, cl claim.Claim) claim.ClaimResponse {
	var receiptURL *string
	if cl.ReceiptPath != nil {
		if url, err := c.fileStorage.GetURL(ctx, *cl.ReceiptPath, 24*time.Hour); err == nil {
			receiptURL = &url
		}
	}
	return claim.ClaimResponse{
		ID:                 cl.ID,
		EmployeeID:         cl.EmployeeID,
		ClaimType:          string(cl.ClaimType),
		Amount:             cl.Amount,
		ClaimDate:          cl.ClaimDate.Format("2006-01-02"),
		Description:        cl.Description,
		ReceiptURL:         receiptURL,
		Status:             string(cl.Status),
		ReviewedBy:         cl.ReviewedBy,
		ReviewNote:         cl.ReviewNote,
		EmployeeName:       cl.EmployeeName,
		EmployeeDepartment: cl.EmployeeDepartment,
	}
}

// Create implements claim.ClaimService.
func (c *ClaimServiceImpl) Create(ctx context.Context, req claim.CreateClaimRequest) (claim.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return claim.ClaimResponse{}, err
	}

	employeeID, _, err := callerFromClaims(ctx)
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	claimDate, _ := time.Parse("2006-01-02", req.ClaimDate)

	var receiptPath *string
	if req.Receipt != nil {
		path := filepath.Join("receipts", employeeID, uuid.NewString()+filepath.Ext(req.ReceiptFilename))
		stored, err := c.fileStorage.Upload(ctx, req.Receipt, path, req.ReceiptContentType)
		if err != nil {
			return claim.ClaimResponse{}, fmt.Errorf("failed to store receipt: %w", err)
		}
		receiptPath = &stored
	}

	created, err := c.ClaimRepository.Create(ctx, claim.Claim{
		EmployeeID:  employeeID,
		ClaimType:   claim.ClaimType(req.ClaimType),
		Amount:      req.Amount,
		ClaimDate:   claimDate,
		Description: req.Description,
		ReceiptPath: receiptPath,
		Status:      claim.StatusPending,
	})
	if err != nil {
		return claim.ClaimResponse{}, fmt.Errorf("failed to create expense claim: %w", err)
	}
	return c.toResponse(ctx, created), nil
}

// GetByID implements claim.ClaimService.
func (c *ClaimServiceImpl) GetByID(ctx context.Context, id string) (claim.ClaimResponse, error) {
	callerID, isAdmin, err := callerFromClaims(ctx)
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	cl, err := c.ClaimRepository.GetByID(ctx, id)
	if err != nil {
		return claim.ClaimResponse{}, err
	}
	if !isAdmin && cl.EmployeeID != callerID {
		return claim.ClaimResponse{}, claim.ErrClaimNotFound
	}
	return c.toResponse(ctx, cl), nil
}

// Review implements claim.ClaimService.
func (c *ClaimServiceImpl) Review(ctx context.Context, id string, req claim.ReviewClaimRequest) (claim.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return claim.ClaimResponse{}, err
	}

	callerID, _, err := callerFromClaims(ctx)
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	cl, err := c.ClaimRepository.GetByID(ctx, id)
	if err != nil {
		return claim.ClaimResponse{}, err
	}
	if cl.Status != claim.StatusPending {
		return claim.ClaimResponse{}, claim.ErrClaimAlreadyReviewed
	}

	cl.Status = claim.Status(req.Status)
	cl.ReviewedBy = &callerID
	cl.ReviewNote = req.ReviewNote

	updated, err := c.ClaimRepository.Update(ctx, cl)
	if err != nil {
		return claim.ClaimResponse{}, fmt.Errorf("failed to update expense claim: %w", err)
	}
	return c.toResponse(ctx, updated), nil
}

// List implements claim.ClaimService.
func (c *ClaimServiceImpl) List(ctx context.Context, filter claim.ClaimFilter) ([]claim.ClaimResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	callerID, isAdmin, err := callerFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	repoFilter := claim.Filter{EmployeeID: filter.EmployeeID}
	if !isAdmin {
		repoFilter.EmployeeID = &callerID
	}
	if filter.Status != nil {
		status := claim.Status(*filter.Status)
		repoFilter.Status = &status
	}

	claims, err := c.ClaimRepository.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense claims: %w", err)
	}

	responses := make([]claim.ClaimResponse, 0, len(claims))
	for _, cl := range claims {
		responses = append(responses, c.toResponse(ctx, cl))
	}
	return responses, nil
}
