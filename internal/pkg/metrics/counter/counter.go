package counter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Bryanx275/trafeek-admin/internal/pkg/cache"
	"github.com/Bryanx275/trafeek-admin/internal/pkg/database"
)

const (
	exportDownloadsKey = "export:counters:downloads"
)

// AddExportDownload increments the pending download counter for an export kind in Redis
func AddExportDownload(kind string) error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, exportDownloadsKey, kind, 1).Err()
}

// FlushAll flushes pending counters to the database
func FlushAll() error {
	return flushDownloads()
}

// flushDownloads drains the Redis hash atomically and applies the pending
// increments to the export_stats table. Uses RENAME to a temporary key for
// atomic drain without losing in-flight increments.
func flushDownloads() error {
	ctx := context.Background()
	rdb := cache.GetClient()

	tmpKey := fmt.Sprintf("%s:tmp:%d", exportDownloadsKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", exportDownloadsKey, tmpKey).Err(); err != nil {
		// If key does not exist, nothing to flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		if err.Error() == "redis: nil" {
			return nil
		}
		return err
	}

	// Ensure cleanup of tmpKey even if later steps fail
	defer rdb.Del(ctx, tmpKey)

	data, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	db := database.GetDB()
	for kind, v := range data {
		inc, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil || inc == 0 {
			continue
		}
		err := db.Exec(
			"INSERT INTO export_stats (kind, download_count, updated_at) VALUES (?, ?, NOW()) "+
				"ON DUPLICATE KEY UPDATE download_count = download_count + VALUES(download_count), updated_at = NOW()",
			kind, inc,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Totals returns the flushed download totals per export kind
func Totals() (map[string]int64, error) {
	db := database.GetDB()
	var rows []struct {
		Kind          string
		DownloadCount int64
	}
	if err := db.Table("export_stats").Select("kind, download_count").Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Kind] = row.DownloadCount
	}
	return totals, nil
}
