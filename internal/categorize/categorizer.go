// Package categorize maps counterparty/merchant strings to spending
// categories using an ordered rule list.
package categorize

import (
	"regexp"
	"strings"
)

// Category labels produced by the categorizer.
const (
	CategoryFood          = "Food"
	CategoryGroceries     = "Groceries"
	CategoryRechargeBills = "Recharge/Bills"
	CategoryTravel        = "Travel"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryP2P           = "P2P"
	CategoryOthers        = "Others"
)

// rule is one entry in the ordered rule list. First match wins.
type rule struct {
	category string
	match    func(s string) bool
}

func keywordRule(category string, keywords ...string) rule {
	return rule{
		category: category,
		match: func(s string) bool {
			for _, kw := range keywords {
				if strings.Contains(s, kw) {
					return true
				}
			}
			return false
		},
	}
}

// phoneHandlePattern matches a 10-digit Indian mobile number, bare or as the
// local part of a UPI handle (e.g. "9999999999@paytm").
var phoneHandlePattern = regexp.MustCompile(`(?:^|[^0-9])[6-9][0-9]{9}(?:[^0-9]|$)`)

// personalHandleSuffixes are consumer PSP suffixes handed out to individuals;
// a handle ending in one of these is a person, not a merchant.
var personalHandleSuffixes = []string{
	"@ybl", "@ibl", "@axl", "@apl", "@paytm", "@upi",
	"@okicici", "@okaxis", "@okhdfcbank", "@oksbi",
}

func personalTransferRule() rule {
	return rule{
		category: CategoryP2P,
		match: func(s string) bool {
			if phoneHandlePattern.MatchString(s) {
				return true
			}
			for _, suffix := range personalHandleSuffixes {
				if strings.Contains(s, suffix) {
					return true
				}
			}
			return false
		},
	}
}

// defaultRules is evaluated strictly in order. The ordering is load-bearing:
// the phone-number/personal-handle check sits before the wallet-brand
// keywords so a transfer to "9999999999@paytm" classifies as P2P rather than
// picking up the wallet brand, and brand rules sit above both so merchant
// VPAs like "swiggy.upi@icici" still land in their brand category.
var defaultRules = []rule{
	keywordRule(CategoryFood,
		"swiggy", "zomato", "dominos", "pizza hut", "mcdonald", "kfc",
		"burger king", "faasos", "eatsure", "box8", "behrouz"),
	keywordRule(CategoryGroceries,
		"blinkit", "zepto", "bigbasket", "grofers", "instamart", "jiomart",
		"dmart", "licious", "milkbasket"),
	keywordRule(CategoryRechargeBills,
		"jio", "airtel", "vodafone", "vi recharge", "bsnl", "tata power",
		"bescom", "adani electricity", "mahadiscom", "indane", "bharat gas",
		"tatasky", "tata play", "dth", "broadband", "recharge"),
	keywordRule(CategoryTravel,
		"uber", "ola", "rapido", "redbus", "irctc", "makemytrip", "goibibo",
		"cleartrip", "yatra", "indigo", "air india", "vistara", "spicejet"),
	keywordRule(CategoryEntertainment,
		"netflix", "hotstar", "prime video", "spotify", "sonyliv", "zee5",
		"jiocinema", "bookmyshow", "gaana", "wynk"),
	keywordRule(CategoryShopping,
		"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho",
		"snapdeal", "tatacliq", "shopsy", "decathlon"),
	personalTransferRule(),
	keywordRule(CategoryP2P,
		"paytm", "phonepe", "gpay", "google pay", "mobikwik", "freecharge",
		"bhim"),
	keywordRule(CategoryShopping,
		"razorpay", "payu", "billdesk", "ccavenue", "cashfree", "instamojo"),
}

// Categorizer resolves a spending category for a counterparty. Stateless and
// safe to share.
type Categorizer struct {
	rules []rule
}

// New returns a categorizer over the default rule list.
func New() *Categorizer {
	return &Categorizer{rules: defaultRules}
}

// Categorize lower-cases and concatenates the counterparty and UPI handle
// into one search string, then returns the category of the first matching
// rule, or Others when nothing matches.
func (c *Categorizer) Categorize(counterparty, upiHandle string) string {
	needle := strings.ToLower(strings.TrimSpace(counterparty + " " + upiHandle))
	for _, r := range c.rules {
		if r.match(needle) {
			return r.category
		}
	}
	return CategoryOthers
}
