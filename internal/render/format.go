package render

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FileSize formats a byte count with the largest unit in B..GB that keeps the
// value at or above 1, rounded to two decimals with trailing zeros dropped.
// Zero is special-cased to avoid log(0).
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	const k = 1024.0
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(k, float64(i))*100) / 100
	// 1048575 B would otherwise round up to "1024 KB"
	if value >= k && i < len(sizeUnits)-1 {
		i++
		value = math.Round(float64(bytes)/math.Pow(k, float64(i))*100) / 100
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// RelativeTime describes how long ago t was, relative to now.
// Anything older than a week is shown as an absolute date.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(math.Floor(diff.Minutes()))

	if mins < 1 {
		return "just now"
	}
	if mins < 60 {
		return strconv.Itoa(mins) + "m ago"
	}

	hours := mins / 60
	if hours < 24 {
		return strconv.Itoa(hours) + "h ago"
	}

	days := hours / 24
	if days < 7 {
		return strconv.Itoa(days) + "d ago"
	}

	return t.Local().Format("Jan 2, 2006")
}

// MessageTime formats a transcript timestamp as hours and minutes.
func MessageTime(t time.Time) string {
	return t.Local().Format("15:04")
}

// DefaultFileIcon is shown for unknown or missing extensions.
const DefaultFileIcon = "📄"

var fileIcons = map[string]string{
	"txt":  "📄",
	"pdf":  "📕",
	"doc":  "📘",
	"docx": "📘",
	"xls":  "📗",
	"xlsx": "📗",
	"csv":  "📊",
	"json": "📋",
	"xml":  "📋",
	"html": "🌐",
	"css":  "🎨",
	"js":   "⚡",
	"py":   "🐍",
	"java": "☕",
	"jpg":  "🖼️",
	"jpeg": "🖼️",
	"png":  "🖼️",
	"gif":  "🖼️",
	"mp3":  "🎵",
	"mp4":  "🎬",
	"zip":  "📦",
	"rar":  "📦",
}

// FileIcon picks an icon from the lowercased file extension.
func FileIcon(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if icon, ok := fileIcons[ext]; ok {
		return icon
	}
	return DefaultFileIcon
}
