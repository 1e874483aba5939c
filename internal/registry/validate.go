package registry

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-errors/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mcpconf/cli/internal/keys"
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z][a-z0-9]*)*$`)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = validate.RegisterValidation("client_id", func(fl validator.FieldLevel) bool {
		return idPattern.MatchString(fl.Field().String())
	})
	return validate
}

// Validate checks every descriptor and rejects registries where two ids,
// or two derived preference keys, collide. Keys are compared
// case-insensitively because the preference store ignores case.
func (r Registry) Validate(ctx context.Context) error {
	validate := newValidator()
	var errs []error
	seen := make(map[string]struct{}, len(r.clients))
	owners := map[string]string{}
	for _, c := range r.clients {
		if err := validate.StructCtx(ctx, &c); err != nil {
			errs = append(errs, errors.Errorf("invalid client %q: %w", c.ID, err))
			continue
		}
		if _, ok := seen[c.ID]; ok {
			errs = append(errs, errors.Errorf("duplicate client id: %s", c.ID))
			continue
		}
		seen[c.ID] = struct{}{}
		for _, k := range keys.Derive(c.ID).All() {
			folded := strings.ToLower(string(k))
			if owner, ok := owners[folded]; ok && owner != c.ID {
				errs = append(errs, errors.Errorf("preference key %s of %s collides with %s", k, c.ID, owner))
			}
			owners[folded] = c.ID
		}
	}
	return errors.Join(errs...)
}
