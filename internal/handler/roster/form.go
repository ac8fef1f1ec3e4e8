package roster

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/zhouzirui/roster/backend/internal/model/person"
)

// Form field names shared with the page template.
const (
	fieldID        = "id"
	fieldName      = "nome"
	fieldGender    = "sexo"
	fieldAge       = "idade"
	fieldCondition = "condicao"
	fieldNote      = "observacao"
)

// parseFields reads the person fields from a submitted form. A missing or
// blank age counts as 0; anything else that is not an integer is an error.
func parseFields(r *http.Request) (person.Fields, error) {
	age := 0
	if raw := strings.TrimSpace(r.PostFormValue(fieldAge)); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return person.Fields{}, fmt.Errorf("invalid %s value %q: %w", fieldAge, raw, err)
		}
		age = parsed
	}

	return person.Fields{
		Name:      r.PostFormValue(fieldName),
		Gender:    r.PostFormValue(fieldGender),
		Age:       age,
		Condition: r.PostFormValue(fieldCondition),
		Note:      r.PostFormValue(fieldNote),
	}, nil
}

func parseID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(fieldID))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", fieldID)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", fieldID, raw, err)
	}
	return id, nil
}
