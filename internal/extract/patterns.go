package extract

import (
	"regexp"

	"sms-transaction-detector/internal/domain"
)

// template describes one known bank/PSP message layout.
//
// Field indexes are 1-based capture-group positions; 0 means the template does
// not expose that field. Mapping groups by explicit index per template (rather
// than branching on group count) is what keeps variant-arity layouts from
// mis-assigning fields.
type template struct {
	name      string
	direction domain.Direction
	re        *regexp.Regexp

	amountGroup       int
	accountGroup      int
	counterpartyGroup int
	dateGroup         int
	referenceGroup    int
}

// defaultTemplates is evaluated strictly in order; the first structural match
// whose fields parse wins. Order is a correctness contract: bank-specific
// layouts sit above the generic debit/credit family so that, e.g., the SBI
// "credited by Rs." layout (account before amount, counterparty after
// "transfer from") is never swallowed by the generic credit pattern.
var defaultTemplates = []template{
	{
		// "Sent Rs.29.00 from Kotak Bank AC X1583 to Q376099045@ybl on 29-11-25.UPI Ref 227911213761."
		name:      "upi-sent",
		direction: domain.DirectionOutgoing,
		re: regexp.MustCompile(`(?i)sent\s+rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+from\s+(?:[a-z ]*?)\bac\s+([a-z0-9*]+)\s+to\s+(\S+?)\s+on\s+(\d{1,2}-\d{1,2}-\d{2,4})(?:\s*\.?\s*upi\s*ref\W*(\d+))?`),
		amountGroup:       1,
		accountGroup:      2,
		counterpartyGroup: 3,
		dateGroup:         4,
		referenceGroup:    5,
	},
	{
		// "Dear SBI User, your A/c X9855-credited by Rs.500.00 on 29Nov25 transfer from RAHUL KUMAR Ref No 331522931832 -SBI"
		// One major bank reuses this differently-ordered layout for the exact
		// phrase "credited by Rs.": the account fragment leads and the
		// counterparty trails "transfer from", so this must be matched before
		// the generic credit family.
		name:      "sbi-credited-by",
		direction: domain.DirectionIncoming,
		re: regexp.MustCompile(`(?i)a/c\s+([a-z0-9*]+)\s*-?\s*credited\s+by\s+rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+on\s+(?:date\s+)?(\d{1,2}[a-z]{3}\d{2,4})\s+(?:transfer\s+|trf\s+)?(?:from|by)\s+(.+?)\s+ref\s*no\.?\W*(\d+)`),
		amountGroup:       2,
		accountGroup:      1,
		counterpartyGroup: 4,
		dateGroup:         3,
		referenceGroup:    5,
	},
	{
		// "Rs.120.50 debited from A/c XX4321 on 05-12-25 to VPA swiggy.upi@icici. UPI Ref No 334455667788 -HDFC Bank"
		name:      "upi-debit-vpa",
		direction: domain.DirectionOutgoing,
		re: regexp.MustCompile(`(?i)rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+(?:is\s+)?debited\s+from\s+(?:your\s+)?a/c\s*(?:no\.?)?\s*([a-z0-9*]+)\s+on\s+(\d{1,2}-\d{1,2}-\d{2,4})\s+to\s+(?:vpa\s+)?(\S+?)\.?(?:\s|$)(?:.*?ref(?:\s*no)?\.?\W*(\d+))?`),
		amountGroup:       1,
		accountGroup:      2,
		counterpartyGroup: 4,
		dateGroup:         3,
		referenceGroup:    5,
	},
	{
		// "Rs.2500.00 credited to A/c XX8821 on 12-01-26 by VPA rahul@okaxis. IMPS Ref No 900145223311"
		name:      "upi-credit-vpa",
		direction: domain.DirectionIncoming,
		re: regexp.MustCompile(`(?i)rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+(?:is\s+)?credited\s+to\s+(?:your\s+)?a/c\s*(?:no\.?)?\s*([a-z0-9*]+)\s+on\s+(\d{1,2}-\d{1,2}-\d{2,4})\s+(?:by|from)\s+(?:vpa\s+)?(\S+?)\.?(?:\s|$)(?:.*?ref(?:\s*no)?\.?\W*(\d+))?`),
		amountGroup:       1,
		accountGroup:      2,
		counterpartyGroup: 4,
		dateGroup:         3,
		referenceGroup:    5,
	},
	{
		// "INR 1,499.00 spent on card XX7014 at AMAZON on 12-01-26. Avl lmt: ..."
		name:      "card-spend",
		direction: domain.DirectionOutgoing,
		re: regexp.MustCompile(`(?i)(?:rs|inr)\.?\s*([\d,]+(?:\.\d{1,2})?)\s+spent\s+(?:on|using)\s+(?:your\s+)?(?:credit\s+|debit\s+)?card\s+(?:no\.?\s*)?([a-z0-9*]+)\s+at\s+(.+?)\s+on\s+(\d{1,2}-\d{1,2}-\d{2,4})`),
		amountGroup:       1,
		accountGroup:      2,
		counterpartyGroup: 3,
		dateGroup:         4,
	},
	{
		// "You have paid Rs.249.00 to NETFLIX via Paytm UPI. Ref 556677889900"
		name:      "wallet-paid",
		direction: domain.DirectionOutgoing,
		re: regexp.MustCompile(`(?i)paid\s+rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+to\s+([a-z0-9@._\- ]+?)(?:\s+via\s+[a-z0-9 ]+?)?\s*[.!](?:.*?ref(?:\s*no)?\.?\W*(\d+))?`),
		amountGroup:       1,
		counterpartyGroup: 2,
		referenceGroup:    3,
	},
	{
		// Generic debit fallback: "Rs.350.00 debited ... towards BESCOM on 02-01-26"
		name:      "generic-debit",
		direction: domain.DirectionOutgoing,
		re: regexp.MustCompile(`(?i)(?:rs|inr)\.?\s*([\d,]+(?:\.\d{1,2})?)\s+(?:has\s+been\s+|was\s+)?(?:debited|deducted)(?:.*?\b(?:at|to|towards)\s+([a-z0-9@._\- ]+?))?(?:\s+on\s+(\d{1,2}[-/]\d{1,2}[-/]\d{2,4}))?\b`),
		amountGroup:       1,
		counterpartyGroup: 2,
		dateGroup:         3,
	},
	{
		// Generic credit fallback: "Rs.5,000 credited ... from ACME CORP on 01-01-26"
		name:      "generic-credit",
		direction: domain.DirectionIncoming,
		re: regexp.MustCompile(`(?i)(?:rs|inr)\.?\s*([\d,]+(?:\.\d{1,2})?)\s+(?:has\s+been\s+|was\s+)?credited(?:.*?\b(?:from|by)\s+([a-z0-9@._\- ]+?))?(?:\s+on\s+(\d{1,2}[-/]\d{1,2}[-/]\d{2,4}))?\b`),
		amountGroup:       1,
		counterpartyGroup: 2,
		dateGroup:         3,
	},
}
