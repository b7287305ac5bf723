package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// pageQuery binds pagination plus the listed filter query params
func pageQuery(c *gin.Context, filterKeys ...string) dto.PageQuery {
	var q dto.PageQuery
	_ = c.ShouldBindQuery(&q)
	q.Normalize()

	q.Filters = make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		if v := c.Query(key); v != "" {
			q.Filters[key] = v
		}
	}
	return q
}
