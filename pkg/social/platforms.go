package social

// Platform names.
const (
	PlatformTwitter  = "twitter"
	PlatformLinkedIn = "linkedin"
	PlatformFacebook = "facebook"
	PlatformMedium   = "medium"
)

// PlatformSpec holds a platform's formatting limits.
type PlatformSpec struct {
	Name        string
	MaxChars    int
	MaxHashtags int
}

// Specs lists the supported platforms in delivery order.
var Specs = []PlatformSpec{
	{Name: PlatformTwitter, MaxChars: 280, MaxHashtags: 2},
	{Name: PlatformLinkedIn, MaxChars: 3000, MaxHashtags: 5},
	{Name: PlatformFacebook, MaxChars: 63206, MaxHashtags: 30},
	{Name: PlatformMedium, MaxChars: 0, MaxHashtags: 5},
}

// SpecFor returns the spec for a platform name, or nil for unknown
// platforms.
func SpecFor(name string) *PlatformSpec {
	for i := range Specs {
		if Specs[i].Name == name {
			return &Specs[i]
		}
	}
	return nil
}
