package repositories

import "jajis/internal/models"

// AddressRepository defines the interface for address book data access.
// Reads are always guarded by the owning user.
type AddressRepository interface {
	GetByUser(userID string) ([]models.Address, error)
	GetByID(userID string, addressID string) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(userID string, addressID string) error
	ClearDefault(userID string, exceptID string) error
}
