// internal/progression/tiers.go
package progression

import "skillsphere/internal/model"

// UnlockThreshold は次のティアを解放するために前のティアで必要な進捗率です
const UnlockThreshold = 70

// TierCount はティアごとの設問数と正答済み数です
type TierCount struct {
	Total     int
	Completed int
}

// 表示用のティアカラー
var tierColors = map[model.Difficulty]string{
	model.DifficultyBeginner:     "#4ade80",
	model.DifficultyIntermediate: "#60a5fa",
	model.DifficultyAdvanced:     "#f59e0b",
	model.DifficultyExpert:       "#ef4444",
}

// TierColor は難易度の表示カラーを返します
func TierColor(d model.Difficulty) string {
	return tierColors[d]
}

// BuildTierBoard はティアの固定順リストを進捗・解放状態つきで返します。
// Beginner は常に解放。ティア n (n>0) は先行する全ティアの進捗が
// UnlockThreshold 以上のときだけ解放されます。どこかで70%を割った時点で、
// それ以降のティアは自身の正答状況に関わらずすべてロックされます。
func BuildTierBoard(counts map[model.Difficulty]TierCount) []model.TierStatus {
	board := make([]model.TierStatus, 0, len(model.Difficulties))
	unlocked := true
	for _, tier := range model.Difficulties {
		c := counts[tier]
		progress := Percent(c.Completed, c.Total)

		board = append(board, model.TierStatus{
			Name:      tier,
			Total:     c.Total,
			Completed: c.Completed,
			Progress:  progress,
			Unlocked:  unlocked,
			Color:     TierColor(tier),
		})

		// 次のティアの解放判定: ここまでの全ティアが閾値以上であること
		if progress < UnlockThreshold {
			unlocked = false
		}
	}
	return board
}
