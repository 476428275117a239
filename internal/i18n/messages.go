package i18n

import "fmt"

// messages handler-facing error and status messages per locale.
var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":              "invalid request",
		"error.unauthorized":             "authentication required",
		"error.forbidden":                "access denied",
		"error.not_found":                "not found",
		"error.internal":                 "internal error",
		"error.login_failed":             "login failed",
		"error.login_invalid":            "invalid username or password",
		"error.login_too_many":           "too many login attempts, try again in %d seconds",
		"error.auth_header_missing":      "authorization header missing",
		"error.auth_header_invalid":      "authorization header malformed",
		"error.token_invalid":            "invalid session token",
		"error.token_revoked":            "session token revoked",
		"error.jwt_secret_missing":       "server authentication misconfigured",
		"error.password_old_invalid":     "current password is incorrect",
		"error.password_weak":            "new password does not meet the policy",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"error.password_require_special": "password must contain a special character",
		"error.publish_date_invalid":     "publish date not recognized",
		"error.captcha_required":         "captcha required",
		"error.captcha_invalid":          "captcha incorrect",
		"error.captcha_generate_failed":  "failed to generate captcha",
		"error.rate_limited":             "too many requests, try again in %d seconds",
		"error.rate_limit_unavailable":   "rate limiter unavailable",
		"error.slug_exists":              "slug already in use",
		"error.slug_used":                "slug already in use",
		"error.publish_date_too_old":     "publish date is more than 24 hours in the past",
		"error.layout_invalid":           "unknown page layout",
		"error.news_not_found":           "news item not found",
		"error.news_fetch_failed":        "failed to load news",
		"error.news_save_failed":         "failed to save news item",
		"error.news_delete_failed":       "failed to delete news item",
		"error.event_not_found":          "event not found",
		"error.event_fetch_failed":       "failed to load events",
		"error.event_save_failed":        "failed to save event",
		"error.event_delete_failed":      "failed to delete event",
		"error.museum_not_found":         "museum not found",
		"error.museum_fetch_failed":      "failed to load museums",
		"error.museum_save_failed":       "failed to save museum",
		"error.museum_delete_failed":     "failed to delete museum",
		"error.page_not_found":           "page not found",
		"error.page_fetch_failed":        "failed to load pages",
		"error.page_save_failed":         "failed to save page",
		"error.page_delete_failed":       "failed to delete page",
		"error.category_not_found":       "category not found",
		"error.category_fetch_failed":    "failed to load categories",
		"error.category_save_failed":     "failed to save category",
		"error.category_delete_failed":   "failed to delete category",
		"error.category_in_use":          "category still has pages or subcategories",
		"error.category_parent_invalid":  "parent category invalid",
		"error.settings_fetch_failed":    "failed to load settings",
		"error.settings_save_failed":     "failed to save settings",
		"error.config_fetch_failed":      "failed to load site configuration",
		"error.file_missing":             "no file uploaded",
		"error.upload_failed":            "file upload failed",
	},
	LocaleEL: {
		"error.bad_request":              "μη έγκυρο αίτημα",
		"error.unauthorized":             "απαιτείται σύνδεση",
		"error.forbidden":                "δεν επιτρέπεται η πρόσβαση",
		"error.not_found":                "δεν βρέθηκε",
		"error.internal":                 "εσωτερικό σφάλμα",
		"error.login_failed":             "η σύνδεση απέτυχε",
		"error.login_invalid":            "λανθασμένο όνομα χρήστη ή κωδικός",
		"error.login_too_many":           "πολλές προσπάθειες σύνδεσης, δοκιμάστε ξανά σε %d δευτερόλεπτα",
		"error.auth_header_missing":      "λείπει η κεφαλίδα εξουσιοδότησης",
		"error.auth_header_invalid":      "λανθασμένη κεφαλίδα εξουσιοδότησης",
		"error.token_invalid":            "μη έγκυρο διακριτικό συνεδρίας",
		"error.token_revoked":            "το διακριτικό συνεδρίας ανακλήθηκε",
		"error.jwt_secret_missing":       "εσφαλμένη ρύθμιση αυθεντικοποίησης",
		"error.password_old_invalid":     "ο τρέχων κωδικός είναι λανθασμένος",
		"error.password_weak":            "ο νέος κωδικός δεν πληροί την πολιτική",
		"error.password_min_length":      "ο κωδικός πρέπει να έχει τουλάχιστον %d χαρακτήρες",
		"error.password_require_upper":   "ο κωδικός πρέπει να περιέχει κεφαλαίο γράμμα",
		"error.password_require_lower":   "ο κωδικός πρέπει να περιέχει πεζό γράμμα",
		"error.password_require_number":  "ο κωδικός πρέπει να περιέχει ψηφίο",
		"error.password_require_special": "ο κωδικός πρέπει να περιέχει ειδικό χαρακτήρα",
		"error.publish_date_invalid":     "μη αναγνωρίσιμη ημερομηνία δημοσίευσης",
		"error.captcha_required":         "απαιτείται captcha",
		"error.captcha_invalid":          "λανθασμένο captcha",
		"error.captcha_generate_failed":  "αποτυχία δημιουργίας captcha",
		"error.rate_limited":             "πολλές αιτήσεις, δοκιμάστε ξανά σε %d δευτερόλεπτα",
		"error.rate_limit_unavailable":   "ο περιοριστής αιτήσεων δεν είναι διαθέσιμος",
		"error.slug_exists":              "το slug χρησιμοποιείται ήδη",
		"error.slug_used":                "το slug χρησιμοποιείται ήδη",
		"error.publish_date_too_old":     "η ημερομηνία δημοσίευσης είναι πάνω από 24 ώρες στο παρελθόν",
		"error.layout_invalid":           "άγνωστη διάταξη σελίδας",
		"error.news_not_found":           "το νέο δεν βρέθηκε",
		"error.news_fetch_failed":        "αποτυχία φόρτωσης νέων",
		"error.news_save_failed":         "αποτυχία αποθήκευσης νέου",
		"error.news_delete_failed":       "αποτυχία διαγραφής νέου",
		"error.event_not_found":          "η εκδήλωση δεν βρέθηκε",
		"error.event_fetch_failed":       "αποτυχία φόρτωσης εκδηλώσεων",
		"error.event_save_failed":        "αποτυχία αποθήκευσης εκδήλωσης",
		"error.event_delete_failed":      "αποτυχία διαγραφής εκδήλωσης",
		"error.museum_not_found":         "το μουσείο δεν βρέθηκε",
		"error.museum_fetch_failed":      "αποτυχία φόρτωσης μουσείων",
		"error.museum_save_failed":       "αποτυχία αποθήκευσης μουσείου",
		"error.museum_delete_failed":     "αποτυχία διαγραφής μουσείου",
		"error.page_not_found":           "η σελίδα δεν βρέθηκε",
		"error.page_fetch_failed":        "αποτυχία φόρτωσης σελίδων",
		"error.page_save_failed":         "αποτυχία αποθήκευσης σελίδας",
		"error.page_delete_failed":       "αποτυχία διαγραφής σελίδας",
		"error.category_not_found":       "η κατηγορία δεν βρέθηκε",
		"error.category_fetch_failed":    "αποτυχία φόρτωσης κατηγοριών",
		"error.category_save_failed":     "αποτυχία αποθήκευσης κατηγορίας",
		"error.category_delete_failed":   "αποτυχία διαγραφής κατηγορίας",
		"error.category_in_use":          "η κατηγορία έχει ακόμα σελίδες ή υποκατηγορίες",
		"error.category_parent_invalid":  "μη έγκυρη γονική κατηγορία",
		"error.settings_fetch_failed":    "αποτυχία φόρτωσης ρυθμίσεων",
		"error.settings_save_failed":     "αποτυχία αποθήκευσης ρυθμίσεων",
		"error.config_fetch_failed":      "αποτυχία φόρτωσης ρυθμίσεων ιστότοπου",
		"error.file_missing":             "δεν στάλθηκε αρχείο",
		"error.upload_failed":            "η μεταφόρτωση αρχείου απέτυχε",
	},
}

// T translates a message key for the locale, falling back to English and
// finally to the key itself.
func T(locale, key string) string {
	locale = NormalizeLocale(locale)
	if msg, ok := messages[locale][key]; ok {
		return msg
	}
	if msg, ok := messages[LocaleEN][key]; ok {
		return msg
	}
	return key
}

// Sprintf translates a key and formats it with args.
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
