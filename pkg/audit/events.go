package audit

import "fmt"

// LoginEvent represents an admin login attempt
type LoginEvent struct {
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Username)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Username)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result,
		},
	}
}

// GenerateEvent represents one run of the content generation pipeline
type GenerateEvent struct {
	Trigger      string // "scheduler" or "manual"
	Country      string
	Technology   string
	PostSlug     string
	QualityScore float64
	Published    bool
	Success      bool
	ErrorMessage string
}

func (e GenerateEvent) MessageID() string {
	return "generate"
}

func (e GenerateEvent) Message() string {
	if !e.Success {
		msg := fmt.Sprintf("content generation for %s / %s failed", e.Country, e.Technology)
		if e.ErrorMessage != "" {
			msg += ": " + e.ErrorMessage
		}
		return msg
	}
	if e.Published {
		return fmt.Sprintf("generated and published %s (%s / %s, quality %.2f)",
			e.PostSlug, e.Country, e.Technology, e.QualityScore)
	}
	return fmt.Sprintf("generated %s as draft (%s / %s, quality %.2f below threshold)",
		e.PostSlug, e.Country, e.Technology, e.QualityScore)
}

func (e GenerateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityError
}

func (e GenerateEvent) Facility() int {
	return FacilityUser
}

func (e GenerateEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDSubject: {
			"country":    e.Country,
			"technology": e.Technology,
		},
		SDIDAction: {
			"operation": "generate",
			"trigger":   e.Trigger,
			"result":    result,
		},
	}
	if e.PostSlug != "" {
		sd[SDIDSubject]["post"] = e.PostSlug
		sd[SDIDSubject]["quality"] = fmt.Sprintf("%.2f", e.QualityScore)
	}
	return sd
}

// PublishEvent represents a post status change by an admin
type PublishEvent struct {
	Username string
	PostSlug string
	Status   string
}

func (e PublishEvent) MessageID() string {
	return "publish"
}

func (e PublishEvent) Message() string {
	return fmt.Sprintf("%s set post %s to %s", e.Username, e.PostSlug, e.Status)
}

func (e PublishEvent) Severity() Severity {
	return SeverityInfo
}

func (e PublishEvent) Facility() int {
	return FacilityUser
}

func (e PublishEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDSubject: {
			"post":   e.PostSlug,
			"status": e.Status,
		},
		SDIDAction: {
			"operation": "publish",
		},
	}
}

// ShareEvent represents a social share delivery attempt
type ShareEvent struct {
	Platform     string
	PostSlug     string
	Success      bool
	ErrorMessage string
}

func (e ShareEvent) MessageID() string {
	return "share"
}

func (e ShareEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("shared %s to %s", e.PostSlug, e.Platform)
	}
	msg := fmt.Sprintf("failed to share %s to %s", e.PostSlug, e.Platform)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ShareEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ShareEvent) Facility() int {
	return FacilityUser
}

func (e ShareEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDSubject: {
			"post":     e.PostSlug,
			"platform": e.Platform,
		},
		SDIDAction: {
			"operation": "share",
			"result":    result,
		},
	}
}

// ConfigChangeEvent represents an automation setting change
type ConfigChangeEvent struct {
	Username string
	ClientIP string
	Key      string
	Value    string
}

func (e ConfigChangeEvent) MessageID() string {
	return "config"
}

func (e ConfigChangeEvent) Message() string {
	return fmt.Sprintf("%s set %s to %q", e.Username, e.Key, e.Value)
}

func (e ConfigChangeEvent) Severity() Severity {
	return SeverityNotice
}

func (e ConfigChangeEvent) Facility() int {
	return FacilityUser
}

func (e ConfigChangeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Username,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDSubject: {
			"key":   e.Key,
			"value": e.Value,
		},
		SDIDAction: {
			"operation": "config",
		},
	}
}

// SubscribeEvent represents a newsletter subscription change
type SubscribeEvent struct {
	Email     string
	ClientIP  string
	Operation string // "subscribe" or "unsubscribe"
}

func (e SubscribeEvent) MessageID() string {
	return "subscribe"
}

func (e SubscribeEvent) Message() string {
	if e.Operation == "unsubscribe" {
		return fmt.Sprintf("%s unsubscribed from the newsletter", e.Email)
	}
	return fmt.Sprintf("%s subscribed to the newsletter", e.Email)
}

func (e SubscribeEvent) Severity() Severity {
	return SeverityInfo
}

func (e SubscribeEvent) Facility() int {
	return FacilityUser
}

func (e SubscribeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
}
