// Package normalize converts raw heterogeneous export rows into canonical
// core.Transaction values. All field-name variance between export formats is
// isolated here; everything downstream sees one schema.
package normalize

import (
	"log/slog"
	"strings"

	"spendlens/internal/core"
)

// RawRow is one row from a transaction source, keyed by whatever column
// headers the export happens to use.
type RawRow map[string]string

// Result carries the normalized batch. Malformed rows are dropped and
// counted, never fatal to the batch.
type Result struct {
	Records []core.Transaction
	Dropped int
}

// Canonical field names.
const (
	fieldDate        = "date"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldAmount      = "amount"
	fieldCard        = "card_number"
	fieldCashback    = "cashback"
)

// Accepted header spellings per canonical field, compared after key folding.
// Russian aliases match the bank export this tool was written for.
var fieldAliases = map[string][]string{
	fieldDate:        {"date", "payment_date", "data_payment", "дата_платежа", "дата_операции"},
	fieldDescription: {"description", "описание"},
	fieldCategory:    {"category", "категория"},
	fieldAmount:      {"amount", "payment_amount", "сумма_операции", "сумма_платежа"},
	fieldCard:        {"card_number", "card", "номер_карты"},
	fieldCashback:    {"cashback", "кэшбэк"},
}

// Null sentinels that some exports write into empty cells. They are treated
// as absent values and never propagated into arithmetic.
var nullSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"n/a":  {},
}

// Rows normalizes a batch of raw rows. Rows with an unparseable date or a
// non-numeric amount are dropped and counted.
func Rows(rows []RawRow) Result {
	res := Result{Records: make([]core.Transaction, 0, len(rows))}

	for i, row := range rows {
		tx, ok := one(row)
		if !ok {
			res.Dropped++
			slog.Debug("Dropped malformed row", "row", i)
			continue
		}
		res.Records = append(res.Records, tx)
	}

	if res.Dropped > 0 {
		slog.Warn("Some rows were malformed and skipped",
			"dropped", res.Dropped,
			"kept", len(res.Records))
	}
	return res
}

func one(row RawRow) (core.Transaction, bool) {
	fields := fold(row)

	date, err := core.ParseDate(fields[fieldDate])
	if err != nil {
		return core.Transaction{}, false
	}

	rawAmount, present := presentValue(fields[fieldAmount])
	var amount core.Money
	if present {
		cents, err := core.ParseSignedCents(rawAmount)
		if err != nil {
			return core.Transaction{}, false
		}
		amount = core.Money{Cents: cents}
	}

	// Cashback is best-effort: absent or unparseable becomes zero.
	var cashback core.Money
	if raw, ok := presentValue(fields[fieldCashback]); ok {
		if cents, err := core.ParseSignedCents(raw); err == nil {
			cashback = core.Money{Cents: cents}
		}
	}

	desc, _ := presentValue(fields[fieldDescription])
	category, _ := presentValue(fields[fieldCategory])

	return core.Transaction{
		Date:        date,
		Description: desc,
		Category:    category,
		Amount:      amount,
		CardID:      CardID(fields[fieldCard]),
		Cashback:    cashback,
	}, true
}

// CardID extracts the last four digits from a masked card number. Anything
// that does not start with the masking marker resolves to core.UnknownCard.
func CardID(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "*") {
		return core.UnknownCard
	}
	digits := strings.TrimLeft(raw, "*")
	if len(digits) < 4 {
		return core.UnknownCard
	}
	return digits[len(digits)-4:]
}

// fold resolves arbitrary header spelling to canonical field names.
func fold(row RawRow) map[string]string {
	byKey := make(map[string]string, len(row))
	for k, v := range row {
		byKey[foldKey(k)] = v
	}

	fields := make(map[string]string, len(fieldAliases))
	for canonical, aliases := range fieldAliases {
		for _, alias := range aliases {
			if v, ok := byKey[alias]; ok {
				fields[canonical] = v
				break
			}
		}
	}
	return fields
}

func foldKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.ReplaceAll(k, " ", "_")
}

// presentValue trims the raw cell and reports whether it carries a real
// value, converting null sentinels to absent.
func presentValue(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if _, null := nullSentinels[strings.ToLower(v)]; null {
		return "", false
	}
	return v, true
}
