package admin

import (
	"net/http"
	"strconv"
	"time"

	"social-app/database"
	"social-app/internal/domain/payments"
	"social-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalUsers       int            `json:"total_users"`
	TotalPayments    int            `json:"total_payments"`
	TotalRevenue     int64          `json:"total_revenue"`
	RecentRevenue    int64          `json:"recent_revenue"`
	PaymentsByStatus map[string]int `json:"payments_by_status"`
	PaymentsByPlan   map[string]int `json:"payments_by_plan"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	var totalPayments int64
	var totalRevenue int64
	var recentRevenue int64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&payments.PaymentRecord{}).Count(&totalPayments)

	paid := []payments.Status{payments.StatusSucceeded, payments.StatusCompleted}
	database.DB.Model(&payments.PaymentRecord{}).
		Where("status IN ?", paid).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&payments.PaymentRecord{}).
		Where("status IN ? AND created_at >= ?", paid, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalPayments = int(totalPayments)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type statusCount struct {
		Status string
		Count  int
	}
	var counts []statusCount
	database.DB.Model(&payments.PaymentRecord{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts)

	stats.PaymentsByStatus = map[string]int{}
	for _, sc := range counts {
		stats.PaymentsByStatus[sc.Status] = sc.Count
	}

	type planCount struct {
		Plan  int
		Count int
	}
	var planCounts []planCount
	database.DB.Model(&payments.PaymentRecord{}).
		Select("plan, COUNT(*) as count").
		Group("plan").
		Scan(&planCounts)

	stats.PaymentsByPlan = map[string]int{}
	for _, pc := range planCounts {
		stats.PaymentsByPlan[strconv.Itoa(pc.Plan)] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": all})
}
