package service

import (
	"fmt"
	"math/rand"
)

const inviteCodePrefix = "FO-"

// generateInviteCode возвращает код вида FO-123456. Уникальность обеспечивает индекс
// в базе, здесь только генерация.
func generateInviteCode() string {
	return fmt.Sprintf("%s%06d", inviteCodePrefix, rand.Intn(1000000)) //nolint:gosec
}
