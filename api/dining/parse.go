package dining

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"menu-bot/models"
)

// The upstream feed nests <record> elements at varying depths and signals
// "no records for this date/meal" with an <error> element, so the payload is
// walked token by token rather than unmarshaled into a fixed shape.

const uncategorized = "Uncategorized"

var whitespaceRun = regexp.MustCompile(`\s+`)

type menuRecord struct {
	Course      string `xml:"course"`
	WebLongName string `xml:"webLongName"`
}

// ParseMenuResponse turns the menu API's XML payload into a Menu. A nil menu
// with a nil error means the upstream reported no records. Item names have
// runs of whitespace collapsed; records without a course land under
// "Uncategorized".
func ParseMenuResponse(payload []byte) (*models.Menu, error) {
	decoder := xml.NewDecoder(bytes.NewReader(payload))
	menu := &models.Menu{}

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse menu XML: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "error":
			// Upstream marker for "no records found".
			return nil, nil
		case "record":
			var record menuRecord
			if err := decoder.DecodeElement(&record, &start); err != nil {
				return nil, fmt.Errorf("parse menu record: %w", err)
			}
			course := strings.TrimSpace(record.Course)
			if course == "" {
				course = uncategorized
			}
			menu.Append(course, cleanItemName(record.WebLongName))
		}
	}
	return menu, nil
}

func cleanItemName(name string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
}
