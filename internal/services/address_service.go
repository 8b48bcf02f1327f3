package services

import (
	"fmt"

	"jajis/internal/models"
	"jajis/internal/repositories"
)

// AddressService handles business logic for the address book.
type AddressService struct {
	addressRepo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

// ListAddresses retrieves the user's addresses, default first.
func (s *AddressService) ListAddresses(userID string) ([]models.Address, error) {
	return s.addressRepo.GetByUser(userID)
}

// GetAddress retrieves one address, guarded by owner.
func (s *AddressService) GetAddress(userID string, addressID string) (*models.Address, error) {
	return s.addressRepo.GetByID(userID, addressID)
}

// CreateAddress saves a new address. Marking it default clears the default
// flag on the user's other addresses.
func (s *AddressService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID
	if address.IsDefault {
		if err := s.addressRepo.ClearDefault(userID, ""); err != nil {
			return err
		}
	}
	return s.addressRepo.Create(address)
}

// UpdateAddress applies changes to an existing address, ownership-checked.
func (s *AddressService) UpdateAddress(userID string, addressID string, updated *models.Address) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(userID, addressID)
	if err != nil {
		return nil, fmt.Errorf("address not found: %w", err)
	}

	address.Label = updated.Label
	address.Line1 = updated.Line1
	address.Line2 = updated.Line2
	address.City = updated.City
	address.State = updated.State
	address.PostalCode = updated.PostalCode
	address.Country = updated.Country
	address.Phone = updated.Phone
	address.IsDefault = updated.IsDefault

	if address.IsDefault {
		if err := s.addressRepo.ClearDefault(userID, address.ID); err != nil {
			return nil, err
		}
	}
	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress removes an address, ownership-checked.
func (s *AddressService) DeleteAddress(userID string, addressID string) error {
	return s.addressRepo.Delete(userID, addressID)
}
