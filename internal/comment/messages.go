package comment

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	_getterKey = "Gets the value of the property %s."
	_setterKey = "Sets the value of the property %s."
)

var _catalog = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	b.SetString(language.English, _getterKey, _getterKey)
	b.SetString(language.English, _setterKey, _setterKey)
	return b
}()

// Messages renders the canned sentences injected into synthesized
// comments, localized for a language tag.
type Messages struct {
	p *message.Printer
}

// NewMessages builds a Messages for the given language.
// Languages without a registered catalog fall back to English.
func NewMessages(tag language.Tag) *Messages {
	return &Messages{
		p: message.NewPrinter(tag, message.Catalog(_catalog)),
	}
}

// PropertyGetter renders the lead sentence for a property getter.
func (m *Messages) PropertyGetter(property string) string {
	return m.p.Sprintf(_getterKey, property)
}

// PropertySetter renders the lead sentence for a property setter.
func (m *Messages) PropertySetter(property string) string {
	return m.p.Sprintf(_setterKey, property)
}
