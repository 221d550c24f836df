package repository

import (
	"github.com/omnistore/backoffice/internal/domain/customerreturn"
	"github.com/omnistore/backoffice/internal/domain/vendor"
	"github.com/omnistore/backoffice/internal/domain/vendorreturn"
	"github.com/omnistore/backoffice/internal/repository/memory"
)

func NewVendorRepository() vendor.Repository {
	return memory.NewVendorStore()
}

func NewCustomerReturnRepository() customerreturn.Repository {
	return memory.NewCustomerReturnStore()
}

func NewVendorReturnRepository() vendorreturn.Repository {
	return memory.NewVendorReturnStore()
}
