package mission_reference

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefix     = "MIS-"
	dateLayout = "20060102"
	suffixLen  = 6
)

// ReferenceFactory выдает человекочитаемые номера вида MIS-20260115-3FA9C1.
// Уникальность не гарантируется, коллизии ловит уникальный индекс в БД.
type ReferenceFactory struct {
	newID func() uuid.UUID
}

func New() *ReferenceFactory {
	return &ReferenceFactory{newID: uuid.New}
}

func (f *ReferenceFactory) Generate(now time.Time) string {
	id := f.newID()
	hex := strings.ReplaceAll(id.String(), "-", "")

	var b strings.Builder
	b.Grow(len(prefix) + len(dateLayout) + 1 + suffixLen)
	b.WriteString(prefix)
	b.WriteString(now.UTC().Format(dateLayout))
	b.WriteByte('-')
	b.WriteString(strings.ToUpper(hex[:suffixLen]))
	return b.String()
}
