// internal/progression/levels.go

// Package progression はXP加算・レベルアップ・ティア解放の計算をまとめた
// 純粋関数群です。DBには一切触れず、入出力は値のみです。
package progression

// レベルアップに必要なXPの係数
const (
	baseRequiredXP = 100
	requiredXPStep = 50
)

// RequiredXP は level から次のレベルに上がるために必要なXPを返します。
// level >= 1 を前提とするため戻り値は常に正です。
func RequiredXP(level int) int {
	return baseRequiredXP + (level-1)*requiredXPStep
}

// AddXP は現在の (level, xp) に amount を加算し、しきい値を超えるたびに
// レベルアップを繰り返します。1回の大きな加算で複数レベル上がることが
// あるため、分岐ではなくループで処理します。
// 戻り値は (新level, 新xp, 新progress, レベルアップしたか)。
// progress は最終レベルの必要XPに対する残XPの割合 (0-100, 切り捨て) です。
func AddXP(level, xp, amount int) (int, int, int, bool) {
	if level < 1 {
		level = 1
	}
	if amount < 0 {
		amount = 0
	}

	xp += amount
	leveledUp := false
	for required := RequiredXP(level); xp >= required; required = RequiredXP(level) {
		xp -= required
		level++
		leveledUp = true
	}

	progress := 100 * xp / RequiredXP(level)
	return level, xp, progress, leveledUp
}

// Percent は completed/total を0-100のパーセント (切り捨て) にします。
// total=0 のときは0を返します。
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return 100 * completed / total
}
