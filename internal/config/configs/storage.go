package configs

import "fmt"

const (
	StorageLocal      = "local"
	StorageCloudinary = "cloudinary"
)

// Storage configures where uploaded files are kept. Local storage writes
// to Dir and serves files under PublicBaseURL; Cloudinary uploads into
// Folder of the account given by CloudinaryURL.
type Storage struct {
	Provider      string `env:"PROVIDER" envDefault:"local"`
	CloudinaryURL string `env:"CLOUDINARY_URL"`
	Folder        string `env:"FOLDER" envDefault:"agency-desk"`
	Dir           string `env:"DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080/uploads"`
}

func (c Storage) Validate() error {
	switch c.Provider {
	case StorageLocal:
		return nil
	case StorageCloudinary:
		if c.CloudinaryURL == "" {
			return fmt.Errorf("STORAGE_CLOUDINARY_URL is required for provider %q", c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown STORAGE_PROVIDER %q", c.Provider)
}
