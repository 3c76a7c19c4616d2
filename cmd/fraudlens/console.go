package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zero-day-ai/fraudlens/internal/fraud"
)

// Console styles, amber CRT palette.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD966")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB000")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#805800"))

	riskCriticalStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color("#FFB000")).
				Bold(true)

	riskHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD966")).
			Bold(true)

	riskMediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB000"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#805800")).
			Padding(0, 1)
)

func riskLabel(level fraud.RiskLevel) string {
	switch level {
	case fraud.RiskCritical:
		return riskCriticalStyle.Render(" CRITICAL ")
	case fraud.RiskHigh:
		return riskHighStyle.Render("HIGH")
	default:
		return riskMediumStyle.Render("MEDIUM")
	}
}

// renderReport prints the full detection report in the console view.
func renderReport(w io.Writer, report *fraud.Report) {
	fmt.Fprintln(w, titleStyle.Render("FraudLens Detection Report"))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("generated %s, %d findings",
		report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), report.FindingCount())))
	fmt.Fprintln(w)

	renderDeviceSharing(w, report.DeviceSharing)
	renderRapidTransfers(w, report.RapidTransfers)
	renderLargeTransactions(w, report.LargeTransactions)
	renderLaundering(w, report.MoneyLaundering)
	renderTakeover(w, report.AccountTakeover)
	renderNetworkConnections(w, report.NetworkConnections)
	renderSummary(w, report.Summary)
}

func renderSection(w io.Writer, title string, empty bool) bool {
	fmt.Fprintln(w, sectionStyle.Render(title))
	if empty {
		fmt.Fprintln(w, mutedStyle.Render("  no findings"))
		fmt.Fprintln(w)
		return false
	}
	return true
}

func renderDeviceSharing(w io.Writer, findings []fraud.DeviceSharingFinding) {
	if !renderSection(w, "Device Sharing", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s  device %s (%s) shared by %s, avg risk %.2f\n",
			riskLabel(f.RiskLevel), f.DeviceID, f.DeviceIP,
			strings.Join(f.UserNames, ", "), f.AvgRiskScore)
	}
	fmt.Fprintln(w)
}

func renderRapidTransfers(w io.Writer, findings []fraud.RapidTransferFinding) {
	if !renderSection(w, "Rapid Transfers", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s  %s -> %s: %d transfers totaling $%.2f (%s -> %s)\n",
			riskLabel(f.RiskLevel), f.FromAccount, f.ToAccount,
			f.TransferCount, f.TotalAmount, f.FromBank, f.ToBank)
	}
	fmt.Fprintln(w)
}

func renderLargeTransactions(w io.Writer, findings []fraud.LargeTransactionFinding) {
	if !renderSection(w, "Large Transactions", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s  %s: $%.2f by %s (%s -> %s) at %s\n",
			riskLabel(f.RiskLevel), f.TransactionID, f.Amount, f.UserName,
			f.FromBank, f.ToBank, f.Timestamp.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}

func renderLaundering(w io.Writer, findings []fraud.LaunderingFinding) {
	if !renderSection(w, "Money Laundering Indicators", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s  %s: $%.2f (%s -> %s)\n",
			riskLabel(f.RiskLevel), f.TransactionID, f.Amount, f.FromBank, f.ToBank)
	}
	fmt.Fprintln(w)
}

func renderTakeover(w io.Writer, findings []fraud.TakeoverFinding) {
	if !renderSection(w, "Account Takeover Indicators", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		fmt.Fprintf(w, "  %s  %s (%s): score %d, %d devices (%d unknown location), %d accounts, risk %.2f\n",
			riskLabel(f.RiskLevel), f.UserName, f.UserID, f.RiskScore,
			f.DeviceCount, f.UnknownLocationDevices, f.AccountCount, f.UserRisk)
	}
	fmt.Fprintln(w)
}

func renderNetworkConnections(w io.Writer, findings []fraud.NetworkConnectionFinding) {
	if !renderSection(w, "Suspicious Network Connections", len(findings) == 0) {
		return
	}
	for _, f := range findings {
		flags := make([]string, 0, 2)
		if f.SharesPhone > 0 {
			flags = append(flags, "shared phone")
		}
		if f.SimilarEmail > 0 {
			flags = append(flags, "similar email")
		}
		detail := ""
		if len(flags) > 0 {
			detail = " + " + strings.Join(flags, " + ")
		}
		fmt.Fprintf(w, "  %s  %s <-> %s: %d shared devices%s (score %d)\n",
			riskLabel(f.RiskLevel), f.UserName1, f.UserName2,
			f.SharedDevices, detail, f.ConnectionScore)
	}
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, summary fraud.RiskSummary) {
	lines := []string{
		sectionStyle.Render("Risk Summary"),
		fmt.Sprintf("High-risk users:          %d", summary.HighRiskUsers),
		fmt.Sprintf("Suspicious transactions:  %d", summary.SuspiciousTransactions),
		fmt.Sprintf("Device sharing incidents: %d", summary.DeviceSharingIncidents),
		fmt.Sprintf("Offshore accounts:        %d", summary.OffshoreAccounts),
		fmt.Sprintf("Total risk score:         %.2f", summary.TotalRiskScore),
	}
	fmt.Fprintln(w, panelStyle.Render(strings.Join(lines, "\n")))
}
