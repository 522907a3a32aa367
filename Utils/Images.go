package Utils

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/cenkalti/dominantcolor"
)

var ImageClient = &http.Client{Timeout: 5 * time.Second}

// GetDominantColorHex fetches (and decodes) a PNG/JPEG image from a URL and returns the dominant color as an embed color
func GetDominantColorHex(Ctx context.Context, ImageURL string) (int, error) {

	Request, ErrorBuilding := http.NewRequestWithContext(Ctx, http.MethodGet, ImageURL, nil)

	if ErrorBuilding != nil {

		return PRIMARY, fmt.Errorf("failed to build image request: %w", ErrorBuilding)

	}

	ImageResp, ReqError := ImageClient.Do(Request)

	if ReqError != nil {

		return PRIMARY, fmt.Errorf("failed to fetch image: %w", ReqError)

	}

	defer ImageResp.Body.Close()

	if ImageResp.StatusCode != http.StatusOK {

		return PRIMARY, fmt.Errorf("failed to fetch image: status code %d", ImageResp.StatusCode)

	}

	Decoded, _, ErrorDecoding := image.Decode(ImageResp.Body)

	if ErrorDecoding != nil {

		return PRIMARY, fmt.Errorf("failed to decode image: %w", ErrorDecoding)

	}

	DominantColorRGB := dominantcolor.Find(Decoded)

	HexValue := (int(DominantColorRGB.R) << 16) + (int(DominantColorRGB.G) << 8) + int(DominantColorRGB.B) // Converts RGB to Hex by shifting 16, 8, and 0 bits

	return HexValue, nil

}
