package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static acknowledgement pages the payment provider redirects back to.
// Neither parses query parameters; each just offers a way back to the
// catalog.

const successPage = `<!DOCTYPE html>
<html>
<head><title>Payment Successful</title></head>
<body>
<h1>Payment Successful!</h1>
<p>Thank you for your purchase. We will contact you soon.</p>
<p><a href="/">Go to Homepage</a></p>
</body>
</html>`

const cancelPage = `<!DOCTYPE html>
<html>
<head><title>Payment Canceled</title></head>
<body>
<h1>Payment Canceled</h1>
<p>Your payment was not processed. Please try again.</p>
<p><a href="/">Go to Homepage</a></p>
</body>
</html>`

func successHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage))
}

func cancelHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cancelPage))
}
