package config

import (
	"github.com/kataras/golog"

	"github.com/lixenwraith/touchport/translator"
)

var logger = golog.Child("[config]")

// Catalog resolves notification text, configured overrides first
type Catalog struct {
	messages map[string]string
}

// NewCatalog merges overrides onto the built-in messages
// Overrides for unknown keys are kept but logged
func NewCatalog(overrides map[string]string) *Catalog {
	messages := translator.DefaultMessages()
	for k, v := range overrides {
		if _, known := messages[k]; !known {
			logger.Warnf("message override for unknown key %q", k)
		}
		messages[k] = v
	}
	return &Catalog{messages: messages}
}

// Message returns the text for key, or the key itself when missing
func (c *Catalog) Message(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}
