package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

func TestCheckOwnerExactMatch(t *testing.T) {
	emails := []string{"a@x.com", "A@x.com", "a@x.com ", "b@x.com", ""}

	for _, authenticated := range emails {
		for _, target := range emails {
			err := CheckOwner(domain.Identity{Email: authenticated}, target)
			if authenticated == target {
				assert.NoError(t, err, "%q vs %q", authenticated, target)
				continue
			}
			if assert.Error(t, err, "%q vs %q", authenticated, target) {
				de := apperrors.ToDomainError(err)
				assert.Equal(t, http.StatusForbidden, de.HTTPStatus)
				assert.Equal(t, "forbidden access", de.Message)
			}
		}
	}
}
