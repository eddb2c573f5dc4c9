package renderer

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
)

// BrowserPool manages a shared pool of headless browser instances used
// for PDF rendering.
type BrowserPool struct {
	config            *config.Config
	launcher          *launcher.Launcher
	browsers          []*ManagedBrowser
	availableBrowsers chan *ManagedBrowser
	mu                sync.RWMutex
	maxInstances      int
	currentInstances  int
	logger            logging.Logger
	ctx               context.Context
	cancel            context.CancelFunc
	cleanupTicker     *time.Ticker
	metrics           *PoolMetrics
}

// ManagedBrowser is a browser instance with lifecycle bookkeeping
type ManagedBrowser struct {
	Browser     *rod.Browser
	ID          string
	CreatedAt   time.Time
	LastUsedAt  time.Time
	InUse       bool
	UsageCount  int
	MaxIdleTime time.Duration
	mu          sync.RWMutex
}

// PoolMetrics tracks browser pool statistics
type PoolMetrics struct {
	mu                     sync.RWMutex
	TotalBrowsersCreated   int64
	TotalBrowsersClosed    int64
	CurrentActiveBrowsers  int64
	AvailableBrowsers      int64
	QueuedRequests         int64
	AverageAcquisitionTime time.Duration
}

// BrowserInstance is a checked-out browser with an open page
type BrowserInstance struct {
	Browser   *ManagedBrowser
	Page      *rod.Page
	pool      *BrowserPool
	createdAt time.Time
}

// NewBrowserPool creates and starts a browser pool sized from config
func NewBrowserPool(cfg *config.Config) *BrowserPool {
	logger := logging.GetGlobalLogger()

	l := launcher.New().
		Headless(cfg.Renderer.HeadlessMode).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-background-networking")

	if chromePath := getSystemChromePath(); chromePath != "" {
		l = l.Bin(chromePath)
		logger.Info("Browser pool using system Chrome", map[string]interface{}{
			"chrome_path":   chromePath,
			"max_instances": cfg.BrowserPool.MaxInstances,
		})
	} else {
		logger.Warn("System Chrome not found, Rod will download browser", map[string]interface{}{
			"max_instances": cfg.BrowserPool.MaxInstances,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())

	pool := &BrowserPool{
		config:            cfg,
		launcher:          l,
		browsers:          make([]*ManagedBrowser, 0, cfg.BrowserPool.MaxInstances),
		availableBrowsers: make(chan *ManagedBrowser, cfg.BrowserPool.MaxInstances),
		maxInstances:      cfg.BrowserPool.MaxInstances,
		logger:            logger,
		ctx:               ctx,
		cancel:            cancel,
		metrics:           &PoolMetrics{},
	}

	pool.startCleanupRoutine()
	return pool
}

// Acquire gets a browser instance with an open page, creating a new
// browser if the pool is under its limit.
func (bp *BrowserPool) Acquire(ctx context.Context) (*BrowserInstance, error) {
	startTime := time.Now()
	bp.metrics.mu.Lock()
	bp.metrics.QueuedRequests++
	bp.metrics.mu.Unlock()

	defer func() {
		bp.metrics.mu.Lock()
		bp.metrics.QueuedRequests--
		bp.metrics.AverageAcquisitionTime = time.Since(startTime)
		bp.metrics.mu.Unlock()
	}()

	select {
	case managedBrowser := <-bp.availableBrowsers:
		if bp.isManagedBrowserHealthy(managedBrowser) {
			return bp.createInstance(managedBrowser)
		}
		bp.closeManagedBrowser(managedBrowser)
	case <-time.After(1 * time.Second):
		// No browser free quickly, try to create a new one
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	bp.mu.Lock()
	if bp.currentInstances < bp.maxInstances {
		bp.currentInstances++
		bp.mu.Unlock()

		managedBrowser, err := bp.createManagedBrowser()
		if err != nil {
			bp.mu.Lock()
			bp.currentInstances--
			bp.mu.Unlock()
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}

		return bp.createInstance(managedBrowser)
	}
	bp.mu.Unlock()

	bp.logger.Warn("Browser pool exhausted, waiting for available instance", map[string]interface{}{
		"max_instances":     bp.maxInstances,
		"current_instances": bp.currentInstances,
	})

	waitCtx, cancel := context.WithTimeout(context.Background(), bp.config.BrowserPool.AcquisitionTimeout)
	defer cancel()

	select {
	case managedBrowser := <-bp.availableBrowsers:
		if bp.isManagedBrowserHealthy(managedBrowser) {
			return bp.createInstance(managedBrowser)
		}
		bp.closeManagedBrowser(managedBrowser)
		return nil, fmt.Errorf("acquired unhealthy browser, pool needs cleanup")
	case <-waitCtx.Done():
		return nil, fmt.Errorf("timeout waiting for browser instance")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release closes the page and returns the browser to the pool
func (bi *BrowserInstance) Release() {
	if bi.Page != nil {
		_ = bi.Page.Close()
	}

	managedBrowser := bi.Browser
	managedBrowser.mu.Lock()
	managedBrowser.InUse = false
	managedBrowser.LastUsedAt = time.Now()
	managedBrowser.UsageCount++
	managedBrowser.mu.Unlock()

	select {
	case bi.pool.availableBrowsers <- managedBrowser:
		bi.pool.logger.Debug("Browser returned to pool", map[string]interface{}{
			"browser_id":  managedBrowser.ID,
			"usage_count": managedBrowser.UsageCount,
		})
	default:
		bi.pool.logger.Warn("Browser pool full, closing browser", map[string]interface{}{
			"browser_id": managedBrowser.ID,
		})
		bi.pool.closeManagedBrowser(managedBrowser)
	}
}

func (bp *BrowserPool) createManagedBrowser() (*ManagedBrowser, error) {
	browserCtx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	url, err := bp.launcher.Context(browserCtx).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(browserCtx).ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	browserID := fmt.Sprintf("browser-%d", time.Now().UnixNano())
	managedBrowser := &ManagedBrowser{
		Browser:     browser,
		ID:          browserID,
		CreatedAt:   time.Now(),
		LastUsedAt:  time.Now(),
		MaxIdleTime: bp.config.BrowserPool.MaxIdleTime,
	}

	bp.mu.Lock()
	bp.browsers = append(bp.browsers, managedBrowser)
	bp.mu.Unlock()

	bp.metrics.mu.Lock()
	bp.metrics.TotalBrowsersCreated++
	bp.metrics.CurrentActiveBrowsers++
	bp.metrics.mu.Unlock()

	bp.logger.Info("New managed browser created", map[string]interface{}{
		"browser_id":        browserID,
		"current_instances": bp.currentInstances,
	})

	return managedBrowser, nil
}

func (bp *BrowserPool) createInstance(managedBrowser *ManagedBrowser) (*BrowserInstance, error) {
	pageCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	page, err := managedBrowser.Browser.Context(pageCtx).Page(proto.TargetCreateTarget{})
	if err != nil {
		bp.closeManagedBrowser(managedBrowser)
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	managedBrowser.mu.Lock()
	managedBrowser.InUse = true
	managedBrowser.LastUsedAt = time.Now()
	managedBrowser.mu.Unlock()

	return &BrowserInstance{
		Browser:   managedBrowser,
		Page:      page,
		pool:      bp,
		createdAt: time.Now(),
	}, nil
}

func (bp *BrowserPool) isManagedBrowserHealthy(managedBrowser *ManagedBrowser) bool {
	if managedBrowser.Browser == nil {
		return false
	}
	_, err := managedBrowser.Browser.Pages()
	return err == nil
}

func (bp *BrowserPool) closeManagedBrowser(managedBrowser *ManagedBrowser) {
	if managedBrowser.Browser != nil {
		if err := managedBrowser.Browser.Close(); err != nil {
			bp.logger.Warn("Failed to gracefully close browser", map[string]interface{}{
				"browser_id": managedBrowser.ID,
				"error":      err.Error(),
			})
		}
	}

	bp.mu.Lock()
	for i, browser := range bp.browsers {
		if browser.ID == managedBrowser.ID {
			bp.browsers = append(bp.browsers[:i], bp.browsers[i+1:]...)
			break
		}
	}
	bp.currentInstances--
	bp.mu.Unlock()

	bp.metrics.mu.Lock()
	bp.metrics.TotalBrowsersClosed++
	bp.metrics.CurrentActiveBrowsers--
	bp.metrics.mu.Unlock()

	bp.logger.Info("Managed browser closed", map[string]interface{}{
		"browser_id":        managedBrowser.ID,
		"current_instances": bp.currentInstances,
		"usage_count":       managedBrowser.UsageCount,
	})
}

func (bp *BrowserPool) startCleanupRoutine() {
	bp.cleanupTicker = time.NewTicker(bp.config.BrowserPool.CleanupInterval)

	go func() {
		defer bp.cleanupTicker.Stop()

		for {
			select {
			case <-bp.cleanupTicker.C:
				bp.cleanupIdleBrowsers()
			case <-bp.ctx.Done():
				return
			}
		}
	}()
}

func (bp *BrowserPool) cleanupIdleBrowsers() {
	now := time.Now()
	var browsersToClose []*ManagedBrowser

	bp.mu.RLock()
	for _, browser := range bp.browsers {
		browser.mu.RLock()
		isIdle := !browser.InUse && now.Sub(browser.LastUsedAt) > browser.MaxIdleTime
		isStuck := browser.InUse && now.Sub(browser.LastUsedAt) > 10*time.Minute
		browser.mu.RUnlock()

		if isIdle || isStuck || !bp.isManagedBrowserHealthy(browser) {
			browsersToClose = append(browsersToClose, browser)
		}
	}
	bp.mu.RUnlock()

	for _, browser := range browsersToClose {
		bp.logger.Info("Closing idle or unhealthy browser", map[string]interface{}{
			"browser_id": browser.ID,
			"in_use":     browser.InUse,
			"last_used":  browser.LastUsedAt,
		})
		bp.closeManagedBrowser(browser)
	}
}

// GetMetrics returns a snapshot of pool statistics
func (bp *BrowserPool) GetMetrics() *PoolMetrics {
	bp.metrics.mu.RLock()
	defer bp.metrics.mu.RUnlock()

	return &PoolMetrics{
		TotalBrowsersCreated:   bp.metrics.TotalBrowsersCreated,
		TotalBrowsersClosed:    bp.metrics.TotalBrowsersClosed,
		CurrentActiveBrowsers:  bp.metrics.CurrentActiveBrowsers,
		AvailableBrowsers:      int64(len(bp.availableBrowsers)),
		QueuedRequests:         bp.metrics.QueuedRequests,
		AverageAcquisitionTime: bp.metrics.AverageAcquisitionTime,
	}
}

// IsHealthy reports whether the pool can still serve requests
func (bp *BrowserPool) IsHealthy() bool {
	bp.mu.RLock()
	defer bp.mu.RUnlock()
	return bp.ctx.Err() == nil && bp.currentInstances >= 0
}

// Shutdown closes all browsers and stops the cleanup routine
func (bp *BrowserPool) Shutdown(ctx context.Context) error {
	bp.logger.Info("Shutting down browser pool")

	bp.cancel()
	if bp.cleanupTicker != nil {
		bp.cleanupTicker.Stop()
	}

	shutdownComplete := make(chan bool, 1)
	go func() {
		bp.mu.Lock()
		browsers := make([]*ManagedBrowser, len(bp.browsers))
		copy(browsers, bp.browsers)
		bp.mu.Unlock()

		for _, browser := range browsers {
			bp.closeManagedBrowser(browser)
		}

		shutdownComplete <- true
	}()

	select {
	case <-shutdownComplete:
		bp.logger.Info("All browsers closed gracefully")
	case <-ctx.Done():
		bp.logger.Warn("Browser shutdown timed out, some browsers may still be running")
	case <-time.After(30 * time.Second):
		bp.logger.Warn("Browser shutdown took too long, forcing completion")
	}

	bp.launcher.Cleanup()

	bp.logger.Info("Browser pool shutdown completed", map[string]interface{}{
		"remaining_browsers": bp.currentInstances,
	})

	return nil
}

// getSystemChromePath locates an installed Chrome/Chromium binary so
// Rod does not need to download one.
func getSystemChromePath() string {
	if chromeBin := os.Getenv("CHROME_BIN"); chromeBin != "" {
		if _, err := os.Stat(chromeBin); err == nil {
			return chromeBin
		}
	}

	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	commonPaths := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/opt/google/chrome/chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
