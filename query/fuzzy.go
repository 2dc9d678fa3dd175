package query

// approxScore 计算pattern与text中任意子串的最小编辑距离，并按pattern长度归一化到[0,1]。
// 0表示完全包含
func approxScore(pattern, text []rune) float64 {
	if len(pattern) == 0 {
		return 0
	}
	// prev[j]: pattern前i个字符与以text[j-1]结尾的子串的最小编辑距离
	prev := make([]int, len(text)+1)
	cur := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0] = i
		for j := 1; j <= len(text); j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	best := len(pattern)
	for _, d := range prev {
		if d < best {
			best = d
		}
	}
	return float64(best) / float64(len(pattern))
}
