// Package guard decides whether a page may be shown to the current
// identity, and where to send the visitor otherwise.
package guard

import (
	"net/url"
	"strings"

	"kitesurf/internal/model"
)

const (
	// LoginPath is where unauthenticated visitors are sent.
	LoginPath = "/login"

	MessageLoginRequired = "Je moet ingelogd zijn om deze pagina te bekijken"
	MessageUnauthorized  = "Je hebt geen toegang tot deze pagina"
)

// Route describes the access rules of one page.
type Route struct {
	Path         string
	Title        string
	RequiresAuth bool
	// Role is empty when any authenticated user may enter.
	Role model.Role
}

const titleSuffix = " - Kitesurfschool Windkracht-12"

// Routes is the page table of the web client.
var Routes = []Route{
	{Path: "/", Title: "Home" + titleSuffix},
	{Path: "/about", Title: "Over Ons" + titleSuffix},
	{Path: "/login", Title: "Inloggen" + titleSuffix},
	{Path: "/wachtwoord-vergeten", Title: "Wachtwoord Vergeten" + titleSuffix},
	{Path: "/register", Title: "Registreren" + titleSuffix},
	{Path: "/voordelen", Title: "Voordelen" + titleSuffix},
	{Path: "/contact", Title: "Contact" + titleSuffix},
	{Path: "/eigenaar/dashboard", Title: "Eigenaar Dashboard" + titleSuffix, RequiresAuth: true, Role: model.RoleOwner},
	{Path: "/instructeur/dashboard", Title: "Instructeur Dashboard" + titleSuffix, RequiresAuth: true, Role: model.RoleInstructor},
	{Path: "/klant/dashboard", Title: "Klant Dashboard" + titleSuffix, RequiresAuth: true, Role: model.RoleCustomer},
	{Path: "/locations", Title: "Locaties" + titleSuffix},
	{Path: "/pakketten", Title: "Pakketten" + titleSuffix},
	{Path: "/reserveren", Title: "Reserveren" + titleSuffix, RequiresAuth: true, Role: model.RoleCustomer},
	{Path: "/profiel", Title: "Mijn Profiel" + titleSuffix, RequiresAuth: true},
	{Path: "/weer", Title: "Weer" + titleSuffix},
}

var notFound = Route{Title: "404 - Pagina Niet Gevonden"}

// Decision is the outcome of evaluating a navigation.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
	Title    string `json:"title"`
}

// LandingPage returns the dashboard of role, or the login page for an
// unknown role.
func LandingPage(role model.Role) string {
	switch role {
	case model.RoleOwner:
		return "/eigenaar/dashboard"
	case model.RoleInstructor:
		return "/instructeur/dashboard"
	case model.RoleCustomer:
		return "/klant/dashboard"
	}
	return LoginPath
}

// IsAuthenticated reports whether an identity is present.
func IsAuthenticated(identity *model.SessionIdentity) bool {
	return identity != nil && identity.ID != 0
}

// HasRole reports whether identity holds role.
func HasRole(identity *model.SessionIdentity, role model.Role) bool {
	return IsAuthenticated(identity) && identity.Role == role
}

// Lookup finds the route for path, ignoring query, fragment and a trailing
// slash. Unknown paths resolve to a public not-found route.
func Lookup(path string) Route {
	p := path
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	for _, r := range Routes {
		if r.Path == p {
			return r
		}
	}
	return notFound
}

// Evaluate decides whether identity (nil when logged out) may open fullPath.
func Evaluate(fullPath string, identity *model.SessionIdentity) Decision {
	route := Lookup(fullPath)

	if route.RequiresAuth && !IsAuthenticated(identity) {
		q := url.Values{"redirect": {fullPath}}
		return Decision{
			Redirect: LoginPath + "?" + q.Encode(),
			Message:  MessageLoginRequired,
			Title:    route.Title,
		}
	}

	if route.Role != "" && !HasRole(identity, route.Role) {
		role := model.Role("")
		if identity != nil {
			role = identity.Role
		}
		return Decision{
			Redirect: LandingPage(role),
			Message:  MessageUnauthorized,
			Title:    route.Title,
		}
	}

	return Decision{Allowed: true, Title: route.Title}
}
