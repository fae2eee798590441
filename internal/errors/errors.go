package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotVerified is returned when the email address has not been verified.
	ErrAccountNotVerified = errors.New("account not verified")
	// ErrAccountBlocked is returned when the account has been blocked.
	ErrAccountBlocked = errors.New("account blocked")
	// ErrAccountInactive is returned when the account is not active.
	ErrAccountInactive = errors.New("account inactive")
	// ErrSessionInvalid is returned when a session token is unknown or expired.
	ErrSessionInvalid = errors.New("session invalid or expired")
	// ErrForbidden is returned when the caller's role does not allow the action.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrEmailAlreadyRegistered is returned on duplicate registration.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidActivationToken is returned for unknown, used or expired activation tokens.
	ErrInvalidActivationToken = errors.New("invalid activation token")
	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidReservation is returned when required reservation fields are missing.
	ErrInvalidReservation = errors.New("invalid reservation")
	// ErrUnknownCustomer is returned when the customer does not exist.
	ErrUnknownCustomer = errors.New("unknown customer")
	// ErrUnknownPackage is returned when the package does not exist.
	ErrUnknownPackage = errors.New("unknown package")
	// ErrUnknownLocation is returned when the location does not exist.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrDuoNotAllowed is returned when a duo participant is given for a single person package.
	ErrDuoNotAllowed = errors.New("package does not allow a duo participant")
	// ErrReservationCreationFailed wraps any failure inside the reservation transaction.
	ErrReservationCreationFailed = errors.New("reservation creation failed")
	// ErrReservationNotFound is returned when a reservation id does not exist.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrInvalidStatus is returned for unknown reservation statuses.
	ErrInvalidStatus = errors.New("invalid reservation status")
	// ErrInvalidStatusTransition is returned when the status change is not allowed.
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")

	// ErrCatalogUnavailable is returned when packages or locations cannot be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrTimeout is returned when a database operation exceeded its deadline.
	ErrTimeout = errors.New("operation timed out")
	// ErrConnectionPoolExhausted is returned when no database connection could be obtained.
	ErrConnectionPoolExhausted = errors.New("connection pool exhausted")
)

// mysqlTooManyConnections is ER_CON_COUNT_ERROR.
const mysqlTooManyConnections = 1040

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Classify maps infrastructure failures onto the taxonomy: deadline
// overruns become ErrTimeout and connection exhaustion becomes
// ErrConnectionPoolExhausted. The cause stays in the chain.
// Any other error is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnectionPoolExhausted) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrTimeout, err)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlTooManyConnections {
		return errors.Join(ErrConnectionPoolExhausted, err)
	}
	return err
}

// MapErrorToHTTP maps domain errors to HTTP errors. Messages are the
// localized strings shown to end users; causes are never included.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTimeout):
		return NewHTTPError(http.StatusGatewayTimeout, "De aanvraag duurde te lang, probeer het later opnieuw", "TIMEOUT")
	case errors.Is(err, ErrConnectionPoolExhausted):
		return NewHTTPError(http.StatusServiceUnavailable, "De server is tijdelijk overbelast", "POOL_EXHAUSTED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Email of wachtwoord is onjuist", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountNotVerified):
		return NewHTTPError(http.StatusUnauthorized, "Email adres is nog niet geverifieerd", "ACCOUNT_NOT_VERIFIED")
	case errors.Is(err, ErrAccountBlocked):
		return NewHTTPError(http.StatusUnauthorized, "Account is geblokkeerd", "ACCOUNT_BLOCKED")
	case errors.Is(err, ErrAccountInactive):
		return NewHTTPError(http.StatusUnauthorized, "Account is inactief", "ACCOUNT_INACTIVE")
	case errors.Is(err, ErrSessionInvalid):
		return NewHTTPError(http.StatusUnauthorized, "Je moet ingelogd zijn om deze pagina te bekijken", "SESSION_INVALID")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Je hebt geen toegang tot deze pagina", "FORBIDDEN")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, "Ongeldig email adres", "INVALID_EMAIL")
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusConflict, "Dit email adres is al geregistreerd", "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidActivationToken):
		return NewHTTPError(http.StatusBadRequest, "De activatielink is ongeldig of verlopen", "INVALID_ACTIVATION_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "Gebruiker niet gevonden", "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidReservation):
		return NewHTTPError(http.StatusBadRequest, "Niet alle verplichte velden zijn ingevuld", "INVALID_RESERVATION")
	case errors.Is(err, ErrUnknownCustomer):
		return NewHTTPError(http.StatusBadRequest, "Onbekende klant", "UNKNOWN_CUSTOMER")
	case errors.Is(err, ErrUnknownPackage):
		return NewHTTPError(http.StatusBadRequest, "Onbekend lespakket", "UNKNOWN_PACKAGE")
	case errors.Is(err, ErrUnknownLocation):
		return NewHTTPError(http.StatusBadRequest, "Onbekende locatie", "UNKNOWN_LOCATION")
	case errors.Is(err, ErrDuoNotAllowed):
		return NewHTTPError(http.StatusBadRequest, "Dit lespakket is voor één persoon", "DUO_NOT_ALLOWED")
	case errors.Is(err, ErrReservationNotFound):
		return NewHTTPError(http.StatusNotFound, "Reservering niet gevonden", "RESERVATION_NOT_FOUND")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, "Ongeldige status", "INVALID_STATUS")
	case errors.Is(err, ErrInvalidStatusTransition):
		return NewHTTPError(http.StatusBadRequest, "Deze statuswijziging is niet toegestaan", "INVALID_STATUS_TRANSITION")
	case errors.Is(err, ErrReservationCreationFailed):
		return NewHTTPError(http.StatusInternalServerError, "Het aanmaken van de reservering is mislukt", "RESERVATION_CREATION_FAILED")
	case errors.Is(err, ErrCatalogUnavailable):
		return NewHTTPError(http.StatusInternalServerError, "De gegevens zijn tijdelijk niet beschikbaar", "CATALOG_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Er is een fout opgetreden", "INTERNAL_ERROR")
	}
}

// IsAuthRejection reports whether err is one of the login rejection kinds.
func IsAuthRejection(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAccountNotVerified) ||
		errors.Is(err, ErrAccountBlocked) ||
		errors.Is(err, ErrAccountInactive)
}
