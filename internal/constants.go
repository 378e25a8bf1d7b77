/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "tourneyscore/0.2.0 (+https://github.com/mikeb26/tourneyscore)"
	WebCacheBucket = "bopmatic-tourneyscore-prod-webcache"
)
