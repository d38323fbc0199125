package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesLoadedMsg struct {
	err error
}

type notesSavedMsg struct {
	err error
}

// refreshMsg re-reads the store so that results of background saves show up.
type refreshMsg struct{}

type notificationMsg struct {
	notification models.Notification
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
