package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/budgetlens/backend/internal/httputil"
	"github.com/budgetlens/backend/internal/news"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// registerNewsRoutes registers the routes for financial news with the
// RouterGroup that is passed.
func (co Controller) registerNewsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsNewsList)
		r.GET("", co.GetNews)
	}

	{
		r.OPTIONS("/summarize", OptionsNewsSummarize)
		r.POST("/summarize", co.SummarizeArticle)
	}
}

type NewsListResponse struct {
	Data  []news.Article `json:"data"`                                                          // List of articles
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// SummarizeEditable represents the article fields the summary is generated from
type SummarizeEditable struct {
	Title       string `json:"title" example:"Fed signals rate pause" default:""`                 // Title of the article
	Description string `json:"description" example:"The Federal Reserve indicated..." default:""` // Description of the article
}

type SummaryResponse struct {
	Data  *news.Summary `json:"data"`                                                        // The generated summary
	Error *string       `json:"error" example:"the summarization service could not be reached"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			News
// @Success		204
// @Router			/v1/news [options]
func OptionsNewsList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			News
// @Success		204
// @Router			/v1/news/summarize [options]
func OptionsNewsSummarize(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get financial news
// @Description	Returns financial news articles tagged with their market sector. When the news API is unreachable a built-in sample feed is served instead.
// @Tags			News
// @Produce		json
// @Success		200			{object}	NewsListResponse
// @Failure		500			{object}	NewsListResponse
// @Param			category	query		string	false	"Market sector to search for"
// @Param			summaries	query		bool	false	"Generate summaries for the first articles"
// @Router			/v1/news [get]
func (co Controller) GetNews(c *gin.Context) {
	sector := c.Query("category")

	articles, err := co.News.FetchFinancialNews(c.Request.Context(), sector)
	if err != nil {
		// The dashboard stays usable without the upstream API
		log.Warn().Err(err).Str("request-id", requestid.Get(c)).Msg("serving sample articles")
		articles = news.SampleArticles(time.Now())
	}

	if c.Query("summaries") == "true" {
		articles = co.News.WithSummaries(c.Request.Context(), articles)
	}

	c.JSON(http.StatusOK, NewsListResponse{Data: articles})
}

// @Summary		Summarize article
// @Description	Generates an analyst summary with a market impact assessment for an article
// @Tags			News
// @Accept			json
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		502		{object}	SummaryResponse
// @Param			article	body		SummarizeEditable	true	"Article"
// @Router			/v1/news/summarize [post]
func (co Controller) SummarizeArticle(c *gin.Context) {
	var editable SummarizeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	summary, err := co.News.Summarize(c.Request.Context(), news.Article{
		Title:       editable.Title,
		Description: editable.Description,
	})
	if err != nil {
		err = fmt.Errorf("%w: %s", errUpstreamNews, err)
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
