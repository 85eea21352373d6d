package services

import (
	"errors"
	"sync"

	"organizer/internal/config"
	"organizer/internal/helpers"
	"organizer/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var errCleaningInProgress = errors.New("cleaning is in progress")

// Janitor enforces the cascade-delete discipline after the fact: the store
// has no referential integrity, so photo rows whose box disappeared and
// blobs no photo row references are swept up on a schedule.
type Janitor struct {
	photoRepo      repository.PhotoRepository
	storageService StorageService
	configuration  *config.Configuration
	logService     LogService
	cleaning       bool
	mutex          sync.Mutex
	cron           *cron.Cron
}

func NewJanitorService(
	photoRepo repository.PhotoRepository,
	storageService StorageService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		photoRepo:      photoRepo,
		storageService: storageService,
		logService:     logService,
		configuration:  configuration,
		cleaning:       false,
		mutex:          sync.Mutex{},
		cron:           cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errCleaningInProgress
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting janitor sweep job")
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "sweep",
			"error": err.Error(),
		}).Error("Failed to schedule janitor sweep")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "sweep",
		"status": "stopped",
	}).Info("Janitor sweep stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	logFields := logrus.Fields{"job": "sweep", "status": "start"}
	if forced {
		logFields["status"] = "forced"
	} else {
		logFields["cron"] = j.configuration.Server.CleanConfig.Schedule
	}
	j.logService.Log.WithFields(logFields).Info("Janitor sweep running")

	j.sweepOrphanPhotoRows()
	j.sweepUnreferencedBlobs()
}

func (j *Janitor) sweepOrphanPhotoRows() {
	orphans, err := j.photoRepo.FindOrphans()
	if err != nil {
		j.logService.Log.WithError(err).Error("Failed to list orphaned photo rows")
		return
	}
	var deleted int
	for i := range orphans {
		if err := j.photoRepo.Delete(orphans[i].ID); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":   "sweep",
				"photo": orphans[i].ID,
			}).WithError(err).Error("Failed to delete orphaned photo row")
			continue
		}
		if err := j.storageService.DeleteByURL(orphans[i].PhotoURL); err != nil {
			j.logService.Log.WithField("photo", orphans[i].ID).WithError(err).Warn("Failed to delete orphaned photo blob")
		}
		deleted++
	}
	if deleted > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":     "sweep",
			"deleted": deleted,
		}).Info("Removed orphaned photo rows")
	}
}

func (j *Janitor) sweepUnreferencedBlobs() {
	urls, err := j.photoRepo.FindAllURLs()
	if err != nil {
		j.logService.Log.WithError(err).Error("Failed to list photo urls")
		return
	}
	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		if key := j.storageService.KeyFromURL(url); key != "" {
			referenced[key] = true
		}
	}
	keys, err := j.storageService.ListKeys("box-photos")
	if err != nil {
		j.logService.Log.WithError(err).Error("Failed to list stored blobs")
		return
	}
	var removed int
	for _, key := range keys {
		if referenced[key] {
			continue
		}
		if !helpers.IsImageFileName(key) {
			continue
		}
		if err := j.storageService.Delete(key); err != nil {
			j.logService.Log.WithField("key", key).WithError(err).Warn("Failed to delete stale blob")
			continue
		}
		removed++
	}
	if removed > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":     "sweep",
			"removed": removed,
		}).Info("Removed unreferenced blobs")
	}
}
