package downloadmgr

// Policy decides when an existing file can be used without downloading it again
type Policy uint8

const (
	// TrustOnFirstUse accepts any existing file. Used when no hash is known
	TrustOnFirstUse Policy = iota
	// VerifyHash only accepts an existing file if its sha1 matches
	VerifyHash
)

func (p Policy) String() string {
	switch p {
	case VerifyHash:
		return "verify-hash"
	default:
		return "trust-on-first-use"
	}
}

// Item is a URL, target pair with an optional sha1 that will be downloaded
type Item struct {
	URL    string
	Target string
	// Sha1 is the expected hex encoded sha1 sum of the file. can be empty
	Sha1 string
}

// Policy returns the validation policy for this item
func (i *Item) Policy() Policy {
	if i.Sha1 != "" {
		return VerifyHash
	}
	return TrustOnFirstUse
}

// NewItem creates an Item to be fetched. sha1 can be empty
func NewItem(URL string, target string, sha1 string) *Item {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	if target == "" {
		panic("Target can not be empty")
	}
	return &Item{URL, target, sha1}
}
