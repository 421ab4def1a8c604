package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/shopspring/decimal"

	"github.com/kvbadhan/timeinmarket/internal/dataflows"
	"github.com/kvbadhan/timeinmarket/internal/sip"
)

// PromptForIdentifier asks for the instrument ISIN or ticker.
func PromptForIdentifier() (string, error) {
	var identifier string
	prompt := &survey.Input{
		Message: "Enter instrument ISIN or ticker (e.g. IE00B4L5Y983, AAPL):",
		Help:    "ISINs and Yahoo Finance ticker symbols both work",
	}

	err := survey.AskOne(prompt, &identifier, survey.WithValidator(func(val interface{}) error {
		return dataflows.ValidateIdentifier(val.(string))
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToUpper(identifier)), nil
}

// PromptForAmount asks for the per-period investment amount.
func PromptForAmount() (decimal.Decimal, error) {
	var amountStr string
	prompt := &survey.Input{
		Message: "Investment amount per period:",
		Default: "100",
		Help:    "The fixed cash amount invested at every schedule occurrence",
	}

	err := survey.AskOne(prompt, &amountStr, survey.WithValidator(func(val interface{}) error {
		amount, err := strconv.ParseFloat(strings.TrimSpace(val.(string)), 64)
		if err != nil {
			return fmt.Errorf("enter a number, e.g. 100 or 250.50")
		}
		if amount <= 0 {
			return fmt.Errorf("amount must be positive")
		}
		return nil
	}))
	if err != nil {
		return decimal.Decimal{}, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(amount), nil
}

// PromptForFrequency asks monthly or weekly.
func PromptForFrequency() (sip.Frequency, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Investment frequency:",
		Options: []string{"Monthly", "Weekly"},
		Default: "Monthly",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return 0, err
	}
	if selected == "Weekly" {
		return sip.Weekly, nil
	}
	return sip.Monthly, nil
}

// PromptForDayOfMonth asks which calendar day a monthly plan invests on.
func PromptForDayOfMonth() (int, error) {
	var dayStr string
	prompt := &survey.Input{
		Message: "Calendar day of month to invest (1-31):",
		Default: "1",
		Help:    "Days beyond a short month's end clamp to its last day (31 in April invests on the 30th)",
	}

	err := survey.AskOne(prompt, &dayStr, survey.WithValidator(func(val interface{}) error {
		day, err := strconv.Atoi(strings.TrimSpace(val.(string)))
		if err != nil || day < 1 || day > 31 {
			return fmt.Errorf("enter a day between 1 and 31")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(dayStr))
}

// PromptForWeekday asks which weekday a weekly plan invests on.
func PromptForWeekday() (time.Weekday, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Day of week to invest:",
		Options: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		Default: "Monday",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return 0, err
	}
	return parseWeekday(selected)
}

// PromptForDateRange asks for the simulation period. Empty answers fall
// back to today and the configured lookback window.
func PromptForDateRange(defaultYears int) (start, end time.Time, err error) {
	dateValidator := func(val interface{}) error {
		s := strings.TrimSpace(val.(string))
		if s == "" {
			return nil
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		return nil
	}

	var endStr string
	endPrompt := &survey.Input{
		Message: "End date (YYYY-MM-DD, empty for today):",
	}
	if err = survey.AskOne(endPrompt, &endStr, survey.WithValidator(dateValidator)); err != nil {
		return
	}
	if end, err = parseDateOrDefault(endStr, time.Now()); err != nil {
		return
	}

	var startStr string
	startPrompt := &survey.Input{
		Message: fmt.Sprintf("Start date (YYYY-MM-DD, empty for %d years before the end date):", defaultYears),
	}
	if err = survey.AskOne(startPrompt, &startStr, survey.WithValidator(dateValidator)); err != nil {
		return
	}
	if start, err = parseDateOrDefault(startStr, end.AddDate(-defaultYears, 0, 0)); err != nil {
		return
	}

	if !start.Before(end) {
		err = fmt.Errorf("start date %s must be before end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return
}
