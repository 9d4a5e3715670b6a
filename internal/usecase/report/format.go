package report

import "fmt"

// 1024 基数のサイズ単位
const (
	KB uint64 = 1024
	MB        = KB * 1024
	GB        = MB * 1024
)

// HumanReadableSize はバイト数を人間が読みやすい文字列へ変換します。
// 換算値が1以上となる最大の単位（bytes/KB/MB/GB）を選び、
// KB 以上は小数第2位まで、bytes は整数で表記します。GB より上の単位はありません
func HumanReadableSize(size uint64) string {
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(GB))
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(MB))
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
