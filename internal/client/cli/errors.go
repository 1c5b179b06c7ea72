package cli

import (
	"errors"
	"log"

	"github.com/stitchdesk/stitchdesk/internal/client/api"
)

// printRequestError reports a failed request to the user. Validation
// failures are expanded per field so the user can see exactly which inputs
// the backend rejected.
func printRequestError(err error) {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		log.Printf("Error: %s", ve.Error())
		for field, msgs := range ve.Fields {
			for _, m := range msgs {
				log.Printf("  %s: %s", field, m)
			}
		}
		return
	}
	log.Printf("Error: %s", err.Error())
}
