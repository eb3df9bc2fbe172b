package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/Bryanx275/trafeek-admin/app/models"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/database"
)

const (
	CacheKeyActionsTotal = "statistics:moderation:total"
	CacheKeyActionsDaily = "statistics:moderation:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyActiveAdmins = "statistics:moderation:admins"
	CacheExpiration      = 30 * time.Minute
)

// ModerationStats holds the audit trail counters shown on the audit page.
type ModerationStats struct {
	TodayActions int
	TotalActions int
	ActiveAdmins int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the refresh interval has elapsed.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counters when the interval is up.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		log.Println("Refreshing moderation statistics cache...")
		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error refreshing moderation statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next read to refresh.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recounts the audit trail and stores all counters
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalActions int64
	if err := db.Model(&models.AuditEntry{}).Count(&totalActions).Error; err != nil {
		log.Printf("Error counting total actions: %v", err)
		return err
	}

	var todayActions int64
	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)

	if err := db.Model(&models.AuditEntry{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayActions).Error; err != nil {
		log.Printf("Error counting today's actions: %v", err)
		return err
	}

	var activeAdmins int64
	if err := db.Model(&models.AuditEntry{}).Distinct("admin_id").Count(&activeAdmins).Error; err != nil {
		log.Printf("Error counting active admins: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyActionsTotal, strconv.FormatInt(totalActions, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total actions: %v", err)
		return err
	}

	dailyKey := fmt.Sprintf(CacheKeyActionsDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayActions, 10), CacheExpiration); err != nil {
		log.Printf("Error caching today's actions: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyActiveAdmins, strconv.FormatInt(activeAdmins, 10), CacheExpiration); err != nil {
		log.Printf("Error caching active admins: %v", err)
		return err
	}

	log.Printf("Moderation statistics updated in cache: Total: %d, Today: %d, Admins: %d",
		totalActions, todayActions, activeAdmins)

	return nil
}

// GetTotalActions returns the audit trail size from cache or database
func GetTotalActions() int {
	val, err := cache.Get(CacheKeyActionsTotal)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(&models.AuditEntry{}).Count(&count).Error; err != nil {
			log.Printf("Error counting total actions: %v", err)
			return 0
		}

		if err := cache.Set(CacheKeyActionsTotal, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching total actions: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTodayActions returns the number of actions recorded today from cache or database
func GetTodayActions() int {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf(CacheKeyActionsDaily, today)

	val, err := cache.Get(dailyKey)
	if err != nil {
		var count int64
		db := database.GetDB()
		todayStart, _ := time.Parse("2006-01-02", today)
		todayEnd := todayStart.Add(24 * time.Hour)

		if err := db.Model(&models.AuditEntry{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&count).Error; err != nil {
			log.Printf("Error counting today's actions: %v", err)
			return 0
		}

		if err := cache.Set(dailyKey, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching today's actions: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetActiveAdmins returns how many distinct admins appear in the trail
func GetActiveAdmins() int {
	val, err := cache.Get(CacheKeyActiveAdmins)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(&models.AuditEntry{}).Distinct("admin_id").Count(&count).Error; err != nil {
			log.Printf("Error counting active admins: %v", err)
			return 0
		}

		if err := cache.Set(CacheKeyActiveAdmins, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching active admins: %v", err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetModerationStats returns all counters as one structure
func GetModerationStats() ModerationStats {
	UpdateCacheIfNeeded()

	return ModerationStats{
		TodayActions: GetTodayActions(),
		TotalActions: GetTotalActions(),
		ActiveAdmins: GetActiveAdmins(),
	}
}
