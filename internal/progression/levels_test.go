// internal/progression/levels_test.go
package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredXP(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"レベル1は100", 1, 100},
		{"レベル2は150", 2, 150},
		{"レベル3は200", 3, 200},
		{"レベル10は550", 10, 550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredXP(tt.level))
		})
	}
}

func TestAddXP(t *testing.T) {
	tests := []struct {
		name          string
		level, xp     int
		amount        int
		wantLevel     int
		wantXP        int
		wantProgress  int
		wantLeveledUp bool
	}{
		{
			// level=1, xp=90, amount=30 → required=100 → xp=20, level=2, progress=floor(100*20/150)=13
			name:  "正常系: しきい値を跨いでレベルアップ",
			level: 1, xp: 90, amount: 30,
			wantLevel: 2, wantXP: 20, wantProgress: 13, wantLeveledUp: true,
		},
		{
			name:  "正常系: しきい値未満は加算のみ",
			level: 1, xp: 10, amount: 30,
			wantLevel: 1, wantXP: 40, wantProgress: 40, wantLeveledUp: false,
		},
		{
			name:  "正常系: 大きな加算で一度に複数レベル上がる",
			level: 1, xp: 0, amount: 260, // 100(L1→2) + 150(L2→3) = 250 消費, 残10
			wantLevel: 3, wantXP: 10, wantProgress: 5, wantLeveledUp: true,
		},
		{
			name:  "正常系: ちょうどしきい値ならレベルアップして残0",
			level: 1, xp: 0, amount: 100,
			wantLevel: 2, wantXP: 0, wantProgress: 0, wantLeveledUp: true,
		},
		{
			name:  "エッジ: amount=0 は無変化",
			level: 2, xp: 40, amount: 0,
			wantLevel: 2, wantXP: 40, wantProgress: 100 * 40 / 150, wantLeveledUp: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, xp, progress, leveledUp := AddXP(tt.level, tt.xp, tt.amount)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantXP, xp)
			assert.Equal(t, tt.wantProgress, progress)
			assert.Equal(t, tt.wantLeveledUp, leveledUp)
		})
	}
}

// 1回のまとめ加算と、しきい値ごとの分割加算で最終状態が一致すること
func TestAddXP_DecompositionEquivalence(t *testing.T) {
	const amount = 1234

	oneShotLevel, oneShotXP, _, _ := AddXP(1, 0, amount)

	level, xp := 1, 0
	for i := 0; i < amount; i++ {
		level, xp, _, _ = AddXP(level, xp, 1)
	}

	assert.Equal(t, oneShotLevel, level)
	assert.Equal(t, oneShotXP, xp)
}

// 加算後は必ず xp < RequiredXP(level) かつ progress が [0,100] に収まること
func TestAddXP_Invariants(t *testing.T) {
	cases := []struct{ level, xp, amount int }{
		{1, 0, 0},
		{1, 99, 1},
		{1, 0, 10_000},
		{5, 120, 7},
		{30, 0, 550},
		{1, 90, 30},
	}
	for _, c := range cases {
		level, xp, progress, _ := AddXP(c.level, c.xp, c.amount)
		require.GreaterOrEqual(t, level, c.level, "レベルは下がらない")
		require.GreaterOrEqual(t, xp, 0)
		require.Less(t, xp, RequiredXP(level))
		require.GreaterOrEqual(t, progress, 0)
		require.LessOrEqual(t, progress, 100)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0), "total=0 は0")
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 66, Percent(2, 3), "切り捨て")
	assert.Equal(t, 100, Percent(3, 3))
}
