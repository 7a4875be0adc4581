package ui

import "github.com/dmitrijs2005/portalauth/internal/models"

// Banner is one recorded ShowBanner call.
type Banner struct {
	Message  string
	Severity Severity
}

// Recorder is a Presenter that keeps every call in memory.
type Recorder struct {
	Banners  []Banner
	Nav      []string
	LoggedIn *models.User
}

func (r *Recorder) ShowBanner(message string, severity Severity) {
	r.Banners = append(r.Banners, Banner{Message: message, Severity: severity})
}

func (r *Recorder) RenderLoggedInNav(user models.User) {
	u := user
	r.LoggedIn = &u
	r.Nav = append(r.Nav, "in:"+user.Email)
}

func (r *Recorder) RenderLoggedOutNav() {
	r.LoggedIn = nil
	r.Nav = append(r.Nav, "out")
}

// Last returns the most recent banner, or a zero Banner.
func (r *Recorder) Last() Banner {
	if len(r.Banners) == 0 {
		return Banner{}
	}
	return r.Banners[len(r.Banners)-1]
}
