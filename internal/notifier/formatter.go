package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"BounceSentry/internal/model"
	"BounceSentry/internal/strategy"
)

// FormatReport renders a scan report as a single Telegram (HTML) message,
// ranked signals first, run statistics at the bottom.
func FormatReport(rep *model.Report) string {
	return strings.Join(FormatReportChunks(rep, 0), "\n")
}

// FormatReportChunks renders the report as one or more messages, each at
// most limit characters (0 disables splitting). Splits fall between signal
// entries, never inside one.
func FormatReportChunks(rep *model.Report, limit int) []string {
	blocks := []string{reportHeader(rep)}
	for i, sig := range rep.Signals {
		blocks = append(blocks, signalEntry(i+1, sig))
	}
	blocks = append(blocks, reportFooter(rep))
	return packBlocks(blocks, limit)
}

func reportHeader(rep *model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🎯 <b>BounceSentry Scan</b> | %s\n", rep.StartedAt.Format("2006-01-02")))
	if len(rep.Signals) == 0 {
		b.WriteString("\nNo elite signals today. The gate held everything back.\n")
	} else {
		b.WriteString(fmt.Sprintf("\n🏆 <b>%d signal(s), ranked by confidence:</b>\n", len(rep.Signals)))
	}
	return b.String()
}

func signalEntry(rank int, sig model.Signal) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. <b>%s</b> @ %.2f (%.1f/10)\n", rank, html.EscapeString(sig.Symbol), sig.Price, sig.Confidence))
	b.WriteString(fmt.Sprintf("   RSI %.1f | Volume %.1fx\n", sig.RSI, sig.VolumeRatio))
	b.WriteString(fmt.Sprintf("   Target %.2f | Stop %.2f\n", sig.Target, sig.StopLoss))
	b.WriteString(fmt.Sprintf("   %s\n", html.EscapeString(sig.Reason)))
	return b.String()
}

func reportFooter(rep *model.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 Scanned %d | usable %d | failed %d | took %s\n",
		rep.Stats.Attempted, rep.Stats.Succeeded, rep.Stats.Failed,
		rep.Duration().Round(time.Millisecond)))

	if len(rep.Failures) > 0 {
		b.WriteString("\n⚠️ <b>Skipped:</b>\n")
		for _, f := range rep.Failures {
			b.WriteString(fmt.Sprintf("  %s: %s\n", html.EscapeString(f.Symbol), f.Outcome))
		}
	}
	return b.String()
}

// packBlocks greedily joins blocks into chunks no longer than limit. A lone
// block over the limit is emitted as its own chunk rather than cut inside
// its HTML markup.
func packBlocks(blocks []string, limit int) []string {
	if limit <= 0 {
		return []string{strings.Join(blocks, "\n")}
	}
	var chunks []string
	var cur strings.Builder
	for _, blk := range blocks {
		if cur.Len() > 0 && cur.Len()+1+len(blk) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n")
		}
		cur.WriteString(blk)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// FormatParams formats the active strategy parameters for the /params command.
func FormatParams(p strategy.Params) string {
	var b strings.Builder
	b.WriteString("⚙️ <b>Strategy parameters</b>\n\n")
	b.WriteString(fmt.Sprintf("RSI oversold: &lt; %.0f\n", p.RSIOversold))
	b.WriteString(fmt.Sprintf("Volume surge: &gt; %.1fx\n", p.VolumeSurge))
	b.WriteString(fmt.Sprintf("Min confidence: %.1f/10\n", p.MinConfidence))
	b.WriteString(fmt.Sprintf("Target gain: %.1f%%\n", p.TargetGainPct))
	b.WriteString(fmt.Sprintf("Stop loss: %.1f%%\n", p.StopLossPct))
	return b.String()
}
