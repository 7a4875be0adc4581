// Package ui is the presentation side of the portal: banners and the
// logged-in / logged-out navigation. Services report outcomes through a
// Presenter and never format output themselves.
package ui

import "github.com/dmitrijs2005/portalauth/internal/models"

type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Warning Severity = "warning"
	Danger  Severity = "danger"
)

type Presenter interface {
	ShowBanner(message string, severity Severity)
	RenderLoggedInNav(user models.User)
	RenderLoggedOutNav()
}
