package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	AuthFailures      int
	BackendErrors     int
	OrderNotFound     int
	MalformedRefunds  int
	StatementsSent    int
	ExportsGenerated  int
	OrderActivities   map[string]int
	ErrorPatterns     map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	// Initialize stats
	stats := &LogStats{
		OrderActivities: make(map[string]int),
		ErrorPatterns:   make(map[string]int),
	}

	// Analyze error logs
	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	// Analyze info and debug logs
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)
	analyzeDebugLogs(filepath.Join(logDir, fmt.Sprintf("debug-%s.log", today)), stats)

	// Print report
	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		// Count authentication failures
		if strings.Contains(line, "Authentication failed") || strings.Contains(line, "Missing Authorization header") {
			stats.AuthFailures++
		}

		// Count backend failures
		if strings.Contains(line, "Backend error response") || strings.Contains(line, "from backend") {
			stats.BackendErrors++
			extractOrderActivity(line, stats)
		}
		if strings.Contains(line, "Status: 404") {
			stats.OrderNotFound++
		}

		// Extract error patterns
		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Count statements sent to customers
		if strings.Contains(line, "Refund statement sent") {
			stats.StatementsSent++
			extractOrderActivity(line, stats)
		}

		// Count exports
		if strings.Contains(line, "Successfully generated return requests export") {
			stats.ExportsGenerated++
		}
	}
}

func analyzeDebugLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Legacy orders with garbage in refundMediaUrls show up here
		if strings.Contains(line, "Skipping malformed refundMediaUrls") {
			stats.MalformedRefunds++
			extractOrderActivity(line, stats)
		}
	}
}

func extractOrderActivity(line string, stats *LogStats) {
	// Extract order ID from log line
	orderRegex := regexp.MustCompile(`order (?:ID: )?(\d+)`)
	if match := orderRegex.FindStringSubmatch(line); len(match) > 1 {
		stats.OrderActivities[match[1]]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Authentication Statistics:")
	fmt.Printf("   Failed Authentications: %d\n", stats.AuthFailures)

	fmt.Println("\n2. Backend Statistics:")
	fmt.Printf("   Backend Errors: %d\n", stats.BackendErrors)
	fmt.Printf("   Orders Not Found: %d\n", stats.OrderNotFound)
	fmt.Printf("   Malformed Refund Media Fields: %d\n", stats.MalformedRefunds)

	fmt.Println("\n3. Support Activity:")
	fmt.Printf("   Refund Statements Sent: %d\n", stats.StatementsSent)
	fmt.Printf("   Exports Generated: %d\n", stats.ExportsGenerated)

	fmt.Println("\n4. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n5. Most Active Orders:")
	printTopOrders(stats.OrderActivities, 5)

	fmt.Println("\n6. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopOrders(orders map[string]int, limit int) {
	type orderActivity struct {
		orderID string
		count   int
	}

	var activities []orderActivity
	for orderID, count := range orders {
		activities = append(activities, orderActivity{orderID, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   Order %s: %d log entries\n", activity.orderID, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
