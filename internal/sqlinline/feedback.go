package sqlinline

const QInsertFeedback = `--sql 6663e9b9-d8bd-4f72-a3ea-a0fc7a9cc408
insert into feedback (id, name, email, camp_name, rating, comment, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::int, $5::text, now())
returning id;
`

const QListFeedback = `--sql 2ec65fbb-a61a-4ed8-a69c-1539eec7a4a3
select id, name, email, camp_name, rating, comment, created_at
from feedback
order by created_at desc;
`
