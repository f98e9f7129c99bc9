package dto

import (
	"puntoventa/internal/core/id"
	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/catalogs/store"
)

// CreateStoreRequest creates a store (tienda).
type CreateStoreRequest struct {
	Code    string  `json:"code" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	s := store.NewStore(r.Code, r.Name)
	s.Address = r.Address
	s.Phone = r.Phone
	return s
}

// UpdateStoreRequest updates a store.
type UpdateStoreRequest struct {
	Code    string  `json:"code" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Version int     `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateStoreRequest) ApplyTo(s *store.Store) {
	s.Code = r.Code
	s.Name = r.Name
	s.Address = r.Address
	s.Phone = r.Phone
	s.Version = r.Version
}

// CreateRegisterRequest creates a register (caja) belonging to a store.
type CreateRegisterRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	StoreID  string `json:"storeId" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateRegisterRequest) ToEntity() (*register.Register, error) {
	storeID, err := id.Parse(r.StoreID)
	if err != nil {
		return nil, err
	}
	reg := register.NewRegister(r.Code, r.Name, storeID)
	if r.IsActive != nil {
		reg.IsActive = *r.IsActive
	}
	return reg, nil
}

// UpdateRegisterRequest updates a register.
type UpdateRegisterRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	StoreID  string `json:"storeId" binding:"required"`
	IsActive bool   `json:"isActive"`
	Version  int    `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateRegisterRequest) ApplyTo(reg *register.Register) error {
	storeID, err := id.Parse(r.StoreID)
	if err != nil {
		return err
	}
	reg.Code = r.Code
	reg.Name = r.Name
	reg.StoreID = storeID
	reg.IsActive = r.IsActive
	reg.Version = r.Version
	return nil
}
