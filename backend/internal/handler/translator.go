package handler

import (
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

var messages = map[string]map[string]string{
	"id": {
		"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":       "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
		"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":  "tidak dapat membuat thread baru karena tipe data tidak sesuai",
		"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat menambahkan comment baru karena properti yang dibutuhkan tidak ada",
		"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat menambahkan comment baru karena tipe data tidak sesuai",
		"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":        "tidak dapat menambahkan balasan baru karena properti yang dibutuhkan tidak ada",
		"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":   "tidak dapat menambahkan balasan baru karena tipe data tidak sesuai",
	},
	"en": {
		"ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":       "cannot create a new thread because a required property is missing",
		"ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":  "cannot create a new thread because a property has the wrong data type",
		"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "cannot add a new comment because a required property is missing",
		"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "cannot add a new comment because a property has the wrong data type",
		"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":        "cannot add a new reply because a required property is missing",
		"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":   "cannot add a new reply because a property has the wrong data type",
	},
}

// Translator maps validation codes to client messages in one locale.
type Translator struct {
	messages map[string]string
}

// NewTranslator falls back to "id" for unknown locales.
func NewTranslator(locale string) *Translator {
	m, ok := messages[locale]
	if !ok {
		m = messages["id"]
	}
	return &Translator{messages: m}
}

// Translate turns a known validation error into a 400 with a localized
// message. Any other error, including validation codes without a message
// such as those raised on malformed storage rows, is returned unchanged.
func (t *Translator) Translate(err error) error {
	vErr, ok := internal_errors.AsValidation(err)
	if !ok {
		return err
	}
	if msg, ok := t.messages[vErr.Code()]; ok {
		return internal_errors.BadRequest(msg)
	}
	return err
}
