package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDosing_BucketBoundaries(t *testing.T) {
	assert.Equal(t, "1 x 21mg", ResolveDosing(10).PatchRecommendation)

	eleven := ResolveDosing(11)
	assert.Equal(t, "1-2 x 21mg", eleven.PatchRecommendation)
	assert.Equal(t, dosingTable[1].ShortActingRecommendation, eleven.ShortActingRecommendation)

	for _, cigs := range []int{1, 5, 9} {
		rec := ResolveDosing(cigs)
		assert.Equal(t, dosingTable[0].PatchRecommendation, rec.PatchRecommendation, "cigs=%d", cigs)
		assert.Equal(t, dosingTable[0].ShortActingRecommendation, rec.ShortActingRecommendation, "cigs=%d", cigs)
	}

	assert.Equal(t, "4mg gum/lozenge every 1-2 hours as needed", ResolveDosing(40).ShortActingRecommendation)
	assert.Equal(t, "4mg gum/lozenge every 1 hour as needed", ResolveDosing(41).ShortActingRecommendation)
}

func TestResolveDosing_AboveTableUsesLastBucket(t *testing.T) {
	last := dosingTable[len(dosingTable)-1]
	for _, cigs := range []int{100, 101, 150, 200} {
		rec := ResolveDosing(cigs)
		assert.Equal(t, last.PatchRecommendation, rec.PatchRecommendation, "cigs=%d", cigs)
		assert.Equal(t, last.ShortActingRecommendation, rec.ShortActingRecommendation, "cigs=%d", cigs)
		assert.Equal(t, cigs, rec.CigarettesPerDay)
	}
}

func TestResolveDosing_SupervisionThreshold(t *testing.T) {
	assert.False(t, ResolveDosing(59).SupervisionRequired)
	assert.True(t, ResolveDosing(60).SupervisionRequired)
	assert.True(t, ResolveDosing(200).SupervisionRequired)
}

func TestResolveDosing_EstimatedNicotineNeed(t *testing.T) {
	assert.Equal(t, 2, ResolveDosing(1).EstimatedNicotineNeedMg)
	assert.Equal(t, 15, ResolveDosing(10).EstimatedNicotineNeedMg)
	assert.Equal(t, 17, ResolveDosing(11).EstimatedNicotineNeedMg)
	assert.Equal(t, 300, ResolveDosing(200).EstimatedNicotineNeedMg)

	// independent of the bucket's own need column
	assert.Equal(t, 20, ResolveDosing(13).EstimatedNicotineNeedMg)
}

func TestResolveDosing_NicotineNeedIsMonotonic(t *testing.T) {
	prev := 0
	for cigs := MinCigarettesPerDay; cigs <= MaxCigarettesPerDay; cigs++ {
		got := ResolveDosing(cigs).EstimatedNicotineNeedMg
		assert.GreaterOrEqual(t, got, prev, "cigs=%d", cigs)
		prev = got
	}
}
