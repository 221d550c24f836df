package service

import (
	"testing"

	"github.com/omnistore/backoffice/internal/api/dto"
	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	ierr "github.com/omnistore/backoffice/internal/errors"
	"github.com/omnistore/backoffice/internal/testutil"
	"github.com/omnistore/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomerReturnServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CustomerReturnService
}

func TestCustomerReturnService(t *testing.T) {
	suite.Run(t, new(CustomerReturnServiceSuite))
}

func (s *CustomerReturnServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCustomerReturnService(ServiceParams{
		Logger:             s.GetLogger(),
		Config:             s.GetConfig(),
		Cache:              s.GetCache(),
		VendorRepo:         s.GetStores().VendorRepo,
		CustomerReturnRepo: s.GetStores().CustomerReturnRepo,
		VendorReturnRepo:   s.GetStores().VendorReturnRepo,
	})
}

func (s *CustomerReturnServiceSuite) createReturn(customerID string, amount int64) *dto.CustomerReturnResponse {
	resp, err := s.service.CreateReturn(s.GetContext(), &dto.CreateCustomerReturnRequest{
		CustomerID:   customerID,
		CustomerName: "John Doe",
		OrderID:      "12342",
		OrderNumber:  "12342",
		Items: []*dto.CustomerReturnItemRequest{
			{
				ProductID:   "1",
				ProductName: "Premium T-Shirt",
				VariantID:   "v1",
				VariantName: "Small / Red",
				Quantity:    1,
				Price:       decimal.NewFromInt(amount),
				Reason:      "Wrong size",
			},
		},
		TotalAmount:  decimal.NewFromInt(amount),
		RefundMethod: types.RefundMethodOriginalPayment,
	})
	s.NoError(err)
	return resp
}

func (s *CustomerReturnServiceSuite) TestCreateReturn() {
	resp := s.createReturn("cust-1", 450)

	s.Contains(resp.ID, "cret_")
	s.Equal("RET-00001", resp.ReturnNumber)
	s.Equal(types.CustomerReturnStatusPending, resp.Status)
	s.False(resp.RequestDate.IsZero())
	s.Nil(resp.ProcessedDate)
}

func (s *CustomerReturnServiceSuite) TestReturnNumbersAreSequential() {
	first := s.createReturn("cust-1", 100)
	second := s.createReturn("cust-2", 200)
	third := s.createReturn("cust-3", 300)

	s.Equal("RET-00001", first.ReturnNumber)
	s.Equal("RET-00002", second.ReturnNumber)
	s.Equal("RET-00003", third.ReturnNumber)
}

func (s *CustomerReturnServiceSuite) TestReturnNumberScansMaxSuffix() {
	// seed a return with a higher number directly in the store
	seeded := &customerreturn.CustomerReturn{
		ID:           "cret_seeded",
		ReturnNumber: "RET-00007",
		CustomerID:   "cust-9",
		CustomerName: "Jane Smith",
		Items: []*customerreturn.ReturnItem{
			{ProductID: "2", ProductName: "Himalaya Powder", Quantity: 2, Price: decimal.NewFromInt(160), Reason: "Defective product"},
		},
		TotalAmount:  decimal.NewFromInt(320),
		Status:       types.CustomerReturnStatusPending,
		RefundMethod: types.RefundMethodCash,
	}
	s.NoError(s.GetStores().CustomerReturnRepo.Create(s.GetContext(), seeded))

	resp := s.createReturn("cust-1", 100)
	s.Equal("RET-00008", resp.ReturnNumber)
}

func (s *CustomerReturnServiceSuite) TestCreateReturnRequiresItems() {
	_, err := s.service.CreateReturn(s.GetContext(), &dto.CreateCustomerReturnRequest{
		CustomerID:   "cust-1",
		CustomerName: "John Doe",
		Items:        []*dto.CustomerReturnItemRequest{},
		TotalAmount:  decimal.NewFromInt(100),
		RefundMethod: types.RefundMethodCash,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CustomerReturnServiceSuite) TestListReturnsNewestFirst() {
	s.createReturn("cust-1", 100)
	s.createReturn("cust-2", 200)

	returns, err := s.service.ListReturns(s.GetContext())
	s.NoError(err)
	s.Len(returns, 2)
	s.Equal("RET-00002", returns[0].ReturnNumber)
	s.Equal("RET-00001", returns[1].ReturnNumber)
}

func (s *CustomerReturnServiceSuite) TestGetReturnsByCustomer() {
	s.createReturn("cust-1", 100)
	s.createReturn("cust-2", 200)
	s.createReturn("cust-1", 300)

	returns, err := s.service.GetReturnsByCustomer(s.GetContext(), "cust-1")
	s.NoError(err)
	s.Len(returns, 2)
	s.True(lo.EveryBy(returns, func(ret *dto.CustomerReturnResponse) bool {
		return ret.CustomerID == "cust-1"
	}))
}

func (s *CustomerReturnServiceSuite) TestApproveReturn() {
	created := s.createReturn("cust-1", 450)

	resp, err := s.service.ApproveReturn(s.GetContext(), created.ID, "Admin")
	s.NoError(err)
	s.Equal(types.CustomerReturnStatusApproved, resp.Status)
	s.NotNil(resp.ProcessedDate)
	s.Equal("Admin", resp.ProcessedBy)
}

func (s *CustomerReturnServiceSuite) TestApproveReturnRestampsProcessedDate() {
	created := s.createReturn("cust-1", 450)

	first, err := s.service.ApproveReturn(s.GetContext(), created.ID, "Admin")
	s.NoError(err)
	firstStamp := *first.ProcessedDate

	second, err := s.service.ApproveReturn(s.GetContext(), created.ID, "Manager")
	s.NoError(err)
	s.Equal(types.CustomerReturnStatusApproved, second.Status)
	s.Equal("Manager", second.ProcessedBy)
	s.False(second.ProcessedDate.Before(firstStamp))
}

func (s *CustomerReturnServiceSuite) TestApproveReturnNotFound() {
	_, err := s.service.ApproveReturn(s.GetContext(), "missing", "Admin")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerReturnServiceSuite) TestRejectReturnOverwritesNotes() {
	created := s.createReturn("cust-1", 450)

	resp, err := s.service.RejectReturn(s.GetContext(), created.ID, "Admin", "Item was used")
	s.NoError(err)
	s.Equal(types.CustomerReturnStatusRejected, resp.Status)
	s.Equal("Item was used", resp.Notes)
}

func (s *CustomerReturnServiceSuite) TestRejectReturnPreservesNotesWhenEmpty() {
	created, err := s.service.CreateReturn(s.GetContext(), &dto.CreateCustomerReturnRequest{
		CustomerID:   "cust-1",
		CustomerName: "John Doe",
		Items: []*dto.CustomerReturnItemRequest{
			{ProductID: "1", ProductName: "Premium T-Shirt", Quantity: 1, Price: decimal.NewFromInt(450), Reason: "Wrong size"},
		},
		TotalAmount:  decimal.NewFromInt(450),
		RefundMethod: types.RefundMethodCash,
		Notes:        "Customer ordered wrong size",
	})
	s.NoError(err)

	resp, err := s.service.RejectReturn(s.GetContext(), created.ID, "Admin", "")
	s.NoError(err)
	s.Equal("Customer ordered wrong size", resp.Notes)
}

func (s *CustomerReturnServiceSuite) TestUpdateReturnPatchesStatus() {
	created := s.createReturn("cust-1", 450)

	resp, err := s.service.UpdateReturn(s.GetContext(), created.ID, &dto.UpdateCustomerReturnRequest{
		Status: lo.ToPtr(types.CustomerReturnStatusCompleted),
	})
	s.NoError(err)
	s.Equal(types.CustomerReturnStatusCompleted, resp.Status)
}

func (s *CustomerReturnServiceSuite) TestDeleteReturn() {
	created := s.createReturn("cust-1", 450)

	s.NoError(s.service.DeleteReturn(s.GetContext(), created.ID))

	_, err := s.service.GetReturn(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerReturnServiceSuite) TestReturnStats() {
	s.createReturn("cust-1", 100)
	approved := s.createReturn("cust-2", 200)
	rejected := s.createReturn("cust-3", 50)

	_, err := s.service.ApproveReturn(s.GetContext(), approved.ID, "Admin")
	s.NoError(err)
	_, err = s.service.RejectReturn(s.GetContext(), rejected.ID, "Admin", "")
	s.NoError(err)

	stats, err := s.service.GetReturnStats(s.GetContext())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal(1, stats.Pending)
	s.Equal(1, stats.Approved)
	s.Equal(1, stats.Rejected)
	s.Equal(0, stats.Completed)
	s.True(stats.TotalRefundAmount.Equal(decimal.NewFromInt(200)))
}

func (s *CustomerReturnServiceSuite) TestReturnStatsCountsCompletedRefunds() {
	created := s.createReturn("cust-1", 300)
	_, err := s.service.UpdateReturn(s.GetContext(), created.ID, &dto.UpdateCustomerReturnRequest{
		Status: lo.ToPtr(types.CustomerReturnStatusCompleted),
	})
	s.NoError(err)

	stats, err := s.service.GetReturnStats(s.GetContext())
	s.NoError(err)
	s.Equal(1, stats.Completed)
	s.True(stats.TotalRefundAmount.Equal(decimal.NewFromInt(300)))
}

func (s *CustomerReturnServiceSuite) TestReturnStatsCacheInvalidatedOnCreate() {
	s.createReturn("cust-1", 100)

	stats, err := s.service.GetReturnStats(s.GetContext())
	s.NoError(err)
	s.Equal(1, stats.Total)

	s.createReturn("cust-2", 200)

	stats, err = s.service.GetReturnStats(s.GetContext())
	s.NoError(err)
	s.Equal(2, stats.Total)
}
